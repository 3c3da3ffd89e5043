package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestHasUniqueEmailIndex(t *testing.T) {
	tests := []struct {
		name  string
		specs []emailIndexSpec
		want  bool
	}{
		{
			name:  "only _id",
			specs: []emailIndexSpec{{Name: "_id_", Key: bson.D{{Key: "_id", Value: 1}}}},
			want:  false,
		},
		{
			name: "storefront schema index",
			specs: []emailIndexSpec{
				{Name: "_id_", Key: bson.D{{Key: "_id", Value: 1}}},
				{Name: "email_1", Key: bson.D{{Key: "email", Value: int32(1)}}, Unique: true},
			},
			want: true,
		},
		{
			name:  "custom name",
			specs: []emailIndexSpec{{Name: "admins_by_email", Key: bson.D{{Key: "email", Value: 1}}, Unique: true}},
			want:  true,
		},
		{
			name:  "non-unique email index",
			specs: []emailIndexSpec{{Name: "email_1", Key: bson.D{{Key: "email", Value: 1}}}},
			want:  false,
		},
		{
			name:  "compound index does not enforce one per email",
			specs: []emailIndexSpec{{Name: "email_1_role_1", Key: bson.D{{Key: "email", Value: 1}, {Key: "role", Value: 1}}, Unique: true}},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasUniqueEmailIndex(tt.specs))
		})
	}
}
