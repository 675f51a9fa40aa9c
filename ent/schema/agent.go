package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// One AI Foundry agent reachable through its platform endpoint.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable().
			Comment("Platform agent identifier (asst_*)"),
		field.String("agent_name"),
		field.String("foundry_endpoint").
			Comment("AI Foundry project endpoint the agent lives on"),
		field.String("description").
			Optional().
			Default(""),
		field.Bool("is_active").
			Default(true).
			Comment("Soft delete flag; inactive agents keep their mapping history"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("mappings", Mapping.Type),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
