package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// logPipeline строит конвейер агрегации журнала:
// $match по _id, $project с $filter по границам дат (включительно)
// и, если задан limit, $project с $slice первых limit упражнений.
func logPipeline(oid primitive.ObjectID, filter models.LogFilter) []bson.M {
	conds := bson.A{}
	if filter.From != nil {
		conds = append(conds, bson.M{"$gte": bson.A{"$$item.date", filter.From.UTC()}})
	}
	if filter.To != nil {
		conds = append(conds, bson.M{"$lte": bson.A{"$$item.date", filter.To.UTC()}})
	}

	var cond any = true
	if len(conds) > 0 {
		cond = bson.M{"$and": conds}
	}

	pipeline := []bson.M{
		{"$match": bson.M{"_id": oid}},
		{"$project": bson.M{
			"username": 1,
			"exercises": bson.M{"$filter": bson.M{
				"input": bson.M{"$ifNull": bson.A{"$exercises", bson.A{}}},
				"as":    "item",
				"cond":  cond,
			}},
		}},
	}

	if filter.Limit > 0 {
		pipeline = append(pipeline, bson.M{"$project": bson.M{
			"username":  1,
			"exercises": bson.M{"$slice": bson.A{"$exercises", 0, filter.Limit}},
		}})
	}
	return pipeline
}
