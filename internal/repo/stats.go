// This file provides small aggregate/statistics queries used by the dashboard
// endpoint. Each function is context-aware and safe to call from services or
// handlers.
package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openhrms/go-hrms-backend/internal/domain"
)

// DepartmentPresence is one row of the per-department attendance breakdown.
type DepartmentPresence struct {
	Department string `bson:"_id" json:"department"`
	Present    int64  `bson:"present" json:"present"`
	Absent     int64  `bson:"absent" json:"absent"`
}

// DepartmentBreakdown aggregates attendance markers for one day into
// per-department present/absent counts, sorted by department name. Days with
// no markers produce an empty slice, not an error.
func (r *AttendanceRepo) DepartmentBreakdown(ctx context.Context, date string) ([]DepartmentPresence, error) {
	coll, err := r.store.Collection(ctx, CollAttendance)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"date": date}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": "$employee_department",
			"present": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", string(domain.StatusPresent)}}, 1, 0,
			}}},
			"absent": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", string(domain.StatusAbsent)}}, 1, 0,
			}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	out := make([]DepartmentPresence, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}
