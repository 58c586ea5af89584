package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProgressRecord stores the single serialized user-progress record.
// There is at most one row; every save replaces the data wholesale.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.JSON("data", map[string]any{}).
			Comment("Full user progress as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the record was last written"),
	}
}
