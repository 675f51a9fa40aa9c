// Code generated by ent, DO NOT EDIT.

package channel

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the channel type in the database.
	Label = "channel"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "channel_id"
	// FieldChannelName holds the string denoting the channel_name field in the database.
	FieldChannelName = "channel_name"
	// FieldChannelType holds the string denoting the channel_type field in the database.
	FieldChannelType = "channel_type"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldPhoneNumber holds the string denoting the phone_number field in the database.
	FieldPhoneNumber = "phone_number"
	// FieldBusinessName holds the string denoting the business_name field in the database.
	FieldBusinessName = "business_name"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMappings holds the string denoting the mappings edge name in mutations.
	EdgeMappings = "mappings"
	// MappingFieldID holds the string denoting the ID field of the Mapping.
	MappingFieldID = "mapping_id"
	// Table holds the table name of the channel in the database.
	Table = "channels"
	// MappingsTable is the table that holds the mappings relation/edge.
	MappingsTable = "mappings"
	// MappingsInverseTable is the table name for the Mapping entity.
	// It exists in this package in order to avoid circular dependency with the "mapping" package.
	MappingsInverseTable = "mappings"
	// MappingsColumn is the table column denoting the mappings relation/edge.
	MappingsColumn = "channel_id"
)

// Columns holds all SQL columns for channel fields.
var Columns = []string{
	FieldID,
	FieldChannelName,
	FieldChannelType,
	FieldProvider,
	FieldPhoneNumber,
	FieldBusinessName,
	FieldIsActive,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultBusinessName holds the default value on creation for the "business_name" field.
	DefaultBusinessName string
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ChannelType defines the type for the "channel_type" enum field.
type ChannelType string

// ChannelType values.
const (
	ChannelTypeWhatsapp ChannelType = "whatsapp"
	ChannelTypeSms      ChannelType = "sms"
)

func (ct ChannelType) String() string {
	return string(ct)
}

// ChannelTypeValidator is a validator for the "channel_type" field enum values. It is called by the builders before save.
func ChannelTypeValidator(ct ChannelType) error {
	switch ct {
	case ChannelTypeWhatsapp, ChannelTypeSms:
		return nil
	default:
		return fmt.Errorf("channel: invalid enum value for channel_type field: %q", ct)
	}
}

// Provider defines the type for the "provider" enum field.
type Provider string

// Provider values.
const (
	ProviderInfobip Provider = "infobip"
	ProviderAcs     Provider = "acs"
)

func (pr Provider) String() string {
	return string(pr)
}

// ProviderValidator is a validator for the "provider" field enum values. It is called by the builders before save.
func ProviderValidator(pr Provider) error {
	switch pr {
	case ProviderInfobip, ProviderAcs:
		return nil
	default:
		return fmt.Errorf("channel: invalid enum value for provider field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Channel queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChannelName orders the results by the channel_name field.
func ByChannelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelName, opts...).ToFunc()
}

// ByChannelType orders the results by the channel_type field.
func ByChannelType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelType, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByPhoneNumber orders the results by the phone_number field.
func ByPhoneNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhoneNumber, opts...).ToFunc()
}

// ByBusinessName orders the results by the business_name field.
func ByBusinessName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessName, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMappingsCount orders the results by mappings count.
func ByMappingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMappingsStep(), opts...)
	}
}

// ByMappings orders the results by mappings terms.
func ByMappings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMappingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMappingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MappingsInverseTable, MappingFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MappingsTable, MappingsColumn),
	)
}
