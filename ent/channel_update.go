// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/multichannel-ai/agentrouter/ent/channel"
	"github.com/multichannel-ai/agentrouter/ent/mapping"
	"github.com/multichannel-ai/agentrouter/ent/predicate"
)

// ChannelUpdate is the builder for updating Channel entities.
type ChannelUpdate struct {
	config
	hooks    []Hook
	mutation *ChannelMutation
}

// Where appends a list predicates to the ChannelUpdate builder.
func (_u *ChannelUpdate) Where(ps ...predicate.Channel) *ChannelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannelName sets the "channel_name" field.
func (_u *ChannelUpdate) SetChannelName(v string) *ChannelUpdate {
	_u.mutation.SetChannelName(v)
	return _u
}

// SetNillableChannelName sets the "channel_name" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableChannelName(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetChannelName(*v)
	}
	return _u
}

// SetChannelType sets the "channel_type" field.
func (_u *ChannelUpdate) SetChannelType(v channel.ChannelType) *ChannelUpdate {
	_u.mutation.SetChannelType(v)
	return _u
}

// SetNillableChannelType sets the "channel_type" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableChannelType(v *channel.ChannelType) *ChannelUpdate {
	if v != nil {
		_u.SetChannelType(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ChannelUpdate) SetProvider(v channel.Provider) *ChannelUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableProvider(v *channel.Provider) *ChannelUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *ChannelUpdate) SetPhoneNumber(v string) *ChannelUpdate {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillablePhoneNumber(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *ChannelUpdate) SetBusinessName(v string) *ChannelUpdate {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableBusinessName(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// ClearBusinessName clears the value of the "business_name" field.
func (_u *ChannelUpdate) ClearBusinessName() *ChannelUpdate {
	_u.mutation.ClearBusinessName()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ChannelUpdate) SetIsActive(v bool) *ChannelUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableIsActive(v *bool) *ChannelUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChannelUpdate) SetUpdatedAt(v time.Time) *ChannelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMappingIDs adds the "mappings" edge to the Mapping entity by IDs.
func (_u *ChannelUpdate) AddMappingIDs(ids ...string) *ChannelUpdate {
	_u.mutation.AddMappingIDs(ids...)
	return _u
}

// AddMappings adds the "mappings" edges to the Mapping entity.
func (_u *ChannelUpdate) AddMappings(v ...*Mapping) *ChannelUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingIDs(ids...)
}

// Mutation returns the ChannelMutation object of the builder.
func (_u *ChannelUpdate) Mutation() *ChannelMutation {
	return _u.mutation
}

// ClearMappings clears all "mappings" edges to the Mapping entity.
func (_u *ChannelUpdate) ClearMappings() *ChannelUpdate {
	_u.mutation.ClearMappings()
	return _u
}

// RemoveMappingIDs removes the "mappings" edge to Mapping entities by IDs.
func (_u *ChannelUpdate) RemoveMappingIDs(ids ...string) *ChannelUpdate {
	_u.mutation.RemoveMappingIDs(ids...)
	return _u
}

// RemoveMappings removes "mappings" edges to Mapping entities.
func (_u *ChannelUpdate) RemoveMappings(v ...*Mapping) *ChannelUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChannelUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChannelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChannelUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := channel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChannelUpdate) check() error {
	if v, ok := _u.mutation.ChannelType(); ok {
		if err := channel.ChannelTypeValidator(v); err != nil {
			return &ValidationError{Name: "channel_type", err: fmt.Errorf(`ent: validator failed for field "Channel.channel_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := channel.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Channel.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *ChannelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(channel.Table, channel.Columns, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChannelName(); ok {
		_spec.SetField(channel.FieldChannelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelType(); ok {
		_spec.SetField(channel.FieldChannelType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(channel.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(channel.FieldPhoneNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(channel.FieldBusinessName, field.TypeString, value)
	}
	if _u.mutation.BusinessNameCleared() {
		_spec.ClearField(channel.FieldBusinessName, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(channel.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(channel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.MappingsTable,
			Columns: []string{channel.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMappingsIDs(); len(nodes) > 0 && !_u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.MappingsTable,
			Columns: []string{channel.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MappingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.MappingsTable,
			Columns: []string{channel.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChannelUpdateOne is the builder for updating a single Channel entity.
type ChannelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChannelMutation
}

// SetChannelName sets the "channel_name" field.
func (_u *ChannelUpdateOne) SetChannelName(v string) *ChannelUpdateOne {
	_u.mutation.SetChannelName(v)
	return _u
}

// SetNillableChannelName sets the "channel_name" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableChannelName(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetChannelName(*v)
	}
	return _u
}

// SetChannelType sets the "channel_type" field.
func (_u *ChannelUpdateOne) SetChannelType(v channel.ChannelType) *ChannelUpdateOne {
	_u.mutation.SetChannelType(v)
	return _u
}

// SetNillableChannelType sets the "channel_type" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableChannelType(v *channel.ChannelType) *ChannelUpdateOne {
	if v != nil {
		_u.SetChannelType(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ChannelUpdateOne) SetProvider(v channel.Provider) *ChannelUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableProvider(v *channel.Provider) *ChannelUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *ChannelUpdateOne) SetPhoneNumber(v string) *ChannelUpdateOne {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillablePhoneNumber(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *ChannelUpdateOne) SetBusinessName(v string) *ChannelUpdateOne {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableBusinessName(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// ClearBusinessName clears the value of the "business_name" field.
func (_u *ChannelUpdateOne) ClearBusinessName() *ChannelUpdateOne {
	_u.mutation.ClearBusinessName()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ChannelUpdateOne) SetIsActive(v bool) *ChannelUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableIsActive(v *bool) *ChannelUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChannelUpdateOne) SetUpdatedAt(v time.Time) *ChannelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMappingIDs adds the "mappings" edge to the Mapping entity by IDs.
func (_u *ChannelUpdateOne) AddMappingIDs(ids ...string) *ChannelUpdateOne {
	_u.mutation.AddMappingIDs(ids...)
	return _u
}

// AddMappings adds the "mappings" edges to the Mapping entity.
func (_u *ChannelUpdateOne) AddMappings(v ...*Mapping) *ChannelUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingIDs(ids...)
}

// Mutation returns the ChannelMutation object of the builder.
func (_u *ChannelUpdateOne) Mutation() *ChannelMutation {
	return _u.mutation
}

// ClearMappings clears all "mappings" edges to the Mapping entity.
func (_u *ChannelUpdateOne) ClearMappings() *ChannelUpdateOne {
	_u.mutation.ClearMappings()
	return _u
}

// RemoveMappingIDs removes the "mappings" edge to Mapping entities by IDs.
func (_u *ChannelUpdateOne) RemoveMappingIDs(ids ...string) *ChannelUpdateOne {
	_u.mutation.RemoveMappingIDs(ids...)
	return _u
}

// RemoveMappings removes "mappings" edges to Mapping entities.
func (_u *ChannelUpdateOne) RemoveMappings(v ...*Mapping) *ChannelUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingIDs(ids...)
}

// Where appends a list predicates to the ChannelUpdate builder.
func (_u *ChannelUpdateOne) Where(ps ...predicate.Channel) *ChannelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChannelUpdateOne) Select(field string, fields ...string) *ChannelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Channel entity.
func (_u *ChannelUpdateOne) Save(ctx context.Context) (*Channel, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelUpdateOne) SaveX(ctx context.Context) *Channel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChannelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChannelUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := channel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChannelUpdateOne) check() error {
	if v, ok := _u.mutation.ChannelType(); ok {
		if err := channel.ChannelTypeValidator(v); err != nil {
			return &ValidationError{Name: "channel_type", err: fmt.Errorf(`ent: validator failed for field "Channel.channel_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := channel.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Channel.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *ChannelUpdateOne) sqlSave(ctx context.Context) (_node *Channel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(channel.Table, channel.Columns, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Channel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, channel.FieldID)
		for _, f := range fields {
			if !channel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != channel.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChannelName(); ok {
		_spec.SetField(channel.FieldChannelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelType(); ok {
		_spec.SetField(channel.FieldChannelType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(channel.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(channel.FieldPhoneNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(channel.FieldBusinessName, field.TypeString, value)
	}
	if _u.mutation.BusinessNameCleared() {
		_spec.ClearField(channel.FieldBusinessName, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(channel.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(channel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.MappingsTable,
			Columns: []string{channel.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMappingsIDs(); len(nodes) > 0 && !_u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.MappingsTable,
			Columns: []string{channel.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MappingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.MappingsTable,
			Columns: []string{channel.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Channel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
