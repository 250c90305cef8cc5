package validators

import "go.mongodb.org/mongo-driver/bson"

var ClassValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"class_type",
			"datetime",
			"instructor",
			"total_slots",
			"available_slots",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "long",
				"minimum":  1,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"class_type": bson.M{
				"enum": []string{"YOGA", "ZUMBA", "HIIT", "PILATES", "CYCLING"},
			},

			"datetime": bson.M{
				"bsonType": "date",
			},

			"instructor": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"total_slots": bson.M{
				"bsonType": "int",
				"minimum":  1,
				"maximum":  500,
			},

			"available_slots": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
