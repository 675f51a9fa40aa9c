// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "foundry_endpoint", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_is_active",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[4]},
			},
		},
	}
	// ChannelsColumns holds the columns for the "channels" table.
	ChannelsColumns = []*schema.Column{
		{Name: "channel_id", Type: field.TypeString, Unique: true},
		{Name: "channel_name", Type: field.TypeString},
		{Name: "channel_type", Type: field.TypeEnum, Enums: []string{"whatsapp", "sms"}},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"infobip", "acs"}},
		{Name: "phone_number", Type: field.TypeString},
		{Name: "business_name", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChannelsTable holds the schema information for the "channels" table.
	ChannelsTable = &schema.Table{
		Name:       "channels",
		Columns:    ChannelsColumns,
		PrimaryKey: []*schema.Column{ChannelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "channel_phone_number",
				Unique:  true,
				Columns: []*schema.Column{ChannelsColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_active",
				},
			},
			{
				Name:    "channel_channel_type",
				Unique:  false,
				Columns: []*schema.Column{ChannelsColumns[2]},
			},
			{
				Name:    "channel_is_active",
				Unique:  false,
				Columns: []*schema.Column{ChannelsColumns[6]},
			},
		},
	}
	// MappingsColumns holds the columns for the "mappings" table.
	MappingsColumns = []*schema.Column{
		{Name: "mapping_id", Type: field.TypeString, Unique: true},
		{Name: "is_primary", Type: field.TypeBool, Default: false},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "channel_id", Type: field.TypeString},
	}
	// MappingsTable holds the schema information for the "mappings" table.
	MappingsTable = &schema.Table{
		Name:       "mappings",
		Columns:    MappingsColumns,
		PrimaryKey: []*schema.Column{MappingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mappings_agents_mappings",
				Columns:    []*schema.Column{MappingsColumns[5]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "mappings_channels_mappings",
				Columns:    []*schema.Column{MappingsColumns[6]},
				RefColumns: []*schema.Column{ChannelsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mapping_channel_id",
				Unique:  true,
				Columns: []*schema.Column{MappingsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_primary AND is_active",
				},
			},
			{
				Name:    "mapping_agent_id",
				Unique:  false,
				Columns: []*schema.Column{MappingsColumns[5]},
			},
			{
				Name:    "mapping_channel_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{MappingsColumns[6], MappingsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		ChannelsTable,
		MappingsTable,
	}
)

func init() {
	MappingsTable.ForeignKeys[0].RefTable = AgentsTable
	MappingsTable.ForeignKeys[1].RefTable = ChannelsTable
}
