// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/multichannel-ai/agentrouter/ent/agent"
	"github.com/multichannel-ai/agentrouter/ent/channel"
	"github.com/multichannel-ai/agentrouter/ent/mapping"
	"github.com/multichannel-ai/agentrouter/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescDescription is the schema descriptor for description field.
	agentDescDescription := agentFields[3].Descriptor()
	// agent.DefaultDescription holds the default value on creation for the description field.
	agent.DefaultDescription = agentDescDescription.Default.(string)
	// agentDescIsActive is the schema descriptor for is_active field.
	agentDescIsActive := agentFields[4].Descriptor()
	// agent.DefaultIsActive holds the default value on creation for the is_active field.
	agent.DefaultIsActive = agentDescIsActive.Default.(bool)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[5].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[6].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	channelFields := schema.Channel{}.Fields()
	_ = channelFields
	// channelDescBusinessName is the schema descriptor for business_name field.
	channelDescBusinessName := channelFields[5].Descriptor()
	// channel.DefaultBusinessName holds the default value on creation for the business_name field.
	channel.DefaultBusinessName = channelDescBusinessName.Default.(string)
	// channelDescIsActive is the schema descriptor for is_active field.
	channelDescIsActive := channelFields[6].Descriptor()
	// channel.DefaultIsActive holds the default value on creation for the is_active field.
	channel.DefaultIsActive = channelDescIsActive.Default.(bool)
	// channelDescCreatedAt is the schema descriptor for created_at field.
	channelDescCreatedAt := channelFields[7].Descriptor()
	// channel.DefaultCreatedAt holds the default value on creation for the created_at field.
	channel.DefaultCreatedAt = channelDescCreatedAt.Default.(func() time.Time)
	// channelDescUpdatedAt is the schema descriptor for updated_at field.
	channelDescUpdatedAt := channelFields[8].Descriptor()
	// channel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	channel.DefaultUpdatedAt = channelDescUpdatedAt.Default.(func() time.Time)
	// channel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	channel.UpdateDefaultUpdatedAt = channelDescUpdatedAt.UpdateDefault.(func() time.Time)
	mappingFields := schema.Mapping{}.Fields()
	_ = mappingFields
	// mappingDescIsPrimary is the schema descriptor for is_primary field.
	mappingDescIsPrimary := mappingFields[3].Descriptor()
	// mapping.DefaultIsPrimary holds the default value on creation for the is_primary field.
	mapping.DefaultIsPrimary = mappingDescIsPrimary.Default.(bool)
	// mappingDescIsActive is the schema descriptor for is_active field.
	mappingDescIsActive := mappingFields[4].Descriptor()
	// mapping.DefaultIsActive holds the default value on creation for the is_active field.
	mapping.DefaultIsActive = mappingDescIsActive.Default.(bool)
	// mappingDescCreatedAt is the schema descriptor for created_at field.
	mappingDescCreatedAt := mappingFields[5].Descriptor()
	// mapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	mapping.DefaultCreatedAt = mappingDescCreatedAt.Default.(func() time.Time)
	// mappingDescUpdatedAt is the schema descriptor for updated_at field.
	mappingDescUpdatedAt := mappingFields[6].Descriptor()
	// mapping.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mapping.DefaultUpdatedAt = mappingDescUpdatedAt.Default.(func() time.Time)
	// mapping.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mapping.UpdateDefaultUpdatedAt = mappingDescUpdatedAt.UpdateDefault.(func() time.Time)
}
