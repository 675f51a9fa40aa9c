package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Channel holds the schema definition for the Channel entity.
// A messaging endpoint: one business phone number bound to a provider
// and a transport type.
type Channel struct {
	ent.Schema
}

// Fields of the Channel.
func (Channel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("channel_id").
			Unique().
			Immutable(),
		field.String("channel_name"),
		field.Enum("channel_type").
			Values("whatsapp", "sms"),
		field.Enum("provider").
			Values("infobip", "acs"),
		field.String("phone_number").
			Comment("E.164, normalized before write"),
		field.String("business_name").
			Optional().
			Default(""),
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

// Edges of the Channel.
func (Channel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("mappings", Mapping.Type),
	}
}

// Indexes of the Channel.
func (Channel) Indexes() []ent.Index {
	return []ent.Index{
		// A phone number may be bound to at most one active channel.
		// Partial unique index backstops the write-path validation race.
		index.Fields("phone_number").
			Unique().
			Annotations(entsql.IndexWhere("is_active")),
		index.Fields("channel_type"),
		index.Fields("is_active"),
	}
}
