package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mapping holds the schema definition for the Mapping entity.
// The join record binding one Agent to one Channel, with a
// primary/non-primary designation per channel.
type Mapping struct {
	ent.Schema
}

// Fields of the Mapping.
func (Mapping) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mapping_id").
			Unique().
			Immutable(),
		field.String("agent_id"),
		field.String("channel_id"),
		field.Bool("is_primary").
			Default(false).
			Comment("The primary mapping's agent handles the channel's traffic"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Mapping.
func (Mapping) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("mappings").
			Field("agent_id").
			Unique().
			Required(),
		edge.From("channel", Channel.Type).
			Ref("mappings").
			Field("channel_id").
			Unique().
			Required(),
	}
}

// Indexes of the Mapping.
func (Mapping) Indexes() []ent.Index {
	return []ent.Index{
		// At most one active primary mapping per channel.
		index.Fields("channel_id").
			Unique().
			Annotations(entsql.IndexWhere("is_primary AND is_active")),
		index.Fields("agent_id"),
		index.Fields("channel_id", "is_active"),
	}
}
