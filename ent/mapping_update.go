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
	"github.com/multichannel-ai/agentrouter/ent/agent"
	"github.com/multichannel-ai/agentrouter/ent/channel"
	"github.com/multichannel-ai/agentrouter/ent/mapping"
	"github.com/multichannel-ai/agentrouter/ent/predicate"
)

// MappingUpdate is the builder for updating Mapping entities.
type MappingUpdate struct {
	config
	hooks    []Hook
	mutation *MappingMutation
}

// Where appends a list predicates to the MappingUpdate builder.
func (_u *MappingUpdate) Where(ps ...predicate.Mapping) *MappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *MappingUpdate) SetAgentID(v string) *MappingUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableAgentID(v *string) *MappingUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *MappingUpdate) SetChannelID(v string) *MappingUpdate {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableChannelID(v *string) *MappingUpdate {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *MappingUpdate) SetIsPrimary(v bool) *MappingUpdate {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableIsPrimary(v *bool) *MappingUpdate {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *MappingUpdate) SetIsActive(v bool) *MappingUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableIsActive(v *bool) *MappingUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MappingUpdate) SetUpdatedAt(v time.Time) *MappingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *MappingUpdate) SetAgent(v *Agent) *MappingUpdate {
	return _u.SetAgentID(v.ID)
}

// SetChannel sets the "channel" edge to the Channel entity.
func (_u *MappingUpdate) SetChannel(v *Channel) *MappingUpdate {
	return _u.SetChannelID(v.ID)
}

// Mutation returns the MappingMutation object of the builder.
func (_u *MappingUpdate) Mutation() *MappingMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *MappingUpdate) ClearAgent() *MappingUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearChannel clears the "channel" edge to the Channel entity.
func (_u *MappingUpdate) ClearChannel() *MappingUpdate {
	_u.mutation.ClearChannel()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MappingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MappingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MappingUpdate) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mapping.agent"`)
	}
	if _u.mutation.ChannelCleared() && len(_u.mutation.ChannelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mapping.channel"`)
	}
	return nil
}

func (_u *MappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mapping.Table, mapping.Columns, sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(mapping.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(mapping.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.AgentTable,
			Columns: []string{mapping.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.AgentTable,
			Columns: []string{mapping.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChannelCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.ChannelTable,
			Columns: []string{mapping.ChannelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChannelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.ChannelTable,
			Columns: []string{mapping.ChannelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MappingUpdateOne is the builder for updating a single Mapping entity.
type MappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MappingMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *MappingUpdateOne) SetAgentID(v string) *MappingUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableAgentID(v *string) *MappingUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *MappingUpdateOne) SetChannelID(v string) *MappingUpdateOne {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableChannelID(v *string) *MappingUpdateOne {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *MappingUpdateOne) SetIsPrimary(v bool) *MappingUpdateOne {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableIsPrimary(v *bool) *MappingUpdateOne {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *MappingUpdateOne) SetIsActive(v bool) *MappingUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableIsActive(v *bool) *MappingUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MappingUpdateOne) SetUpdatedAt(v time.Time) *MappingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *MappingUpdateOne) SetAgent(v *Agent) *MappingUpdateOne {
	return _u.SetAgentID(v.ID)
}

// SetChannel sets the "channel" edge to the Channel entity.
func (_u *MappingUpdateOne) SetChannel(v *Channel) *MappingUpdateOne {
	return _u.SetChannelID(v.ID)
}

// Mutation returns the MappingMutation object of the builder.
func (_u *MappingUpdateOne) Mutation() *MappingMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *MappingUpdateOne) ClearAgent() *MappingUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearChannel clears the "channel" edge to the Channel entity.
func (_u *MappingUpdateOne) ClearChannel() *MappingUpdateOne {
	_u.mutation.ClearChannel()
	return _u
}

// Where appends a list predicates to the MappingUpdate builder.
func (_u *MappingUpdateOne) Where(ps ...predicate.Mapping) *MappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MappingUpdateOne) Select(field string, fields ...string) *MappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mapping entity.
func (_u *MappingUpdateOne) Save(ctx context.Context) (*Mapping, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MappingUpdateOne) SaveX(ctx context.Context) *Mapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MappingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MappingUpdateOne) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mapping.agent"`)
	}
	if _u.mutation.ChannelCleared() && len(_u.mutation.ChannelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mapping.channel"`)
	}
	return nil
}

func (_u *MappingUpdateOne) sqlSave(ctx context.Context) (_node *Mapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mapping.Table, mapping.Columns, sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mapping.FieldID)
		for _, f := range fields {
			if !mapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mapping.FieldID {
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
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(mapping.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(mapping.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.AgentTable,
			Columns: []string{mapping.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.AgentTable,
			Columns: []string{mapping.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChannelCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.ChannelTable,
			Columns: []string{mapping.ChannelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChannelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.ChannelTable,
			Columns: []string{mapping.ChannelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Mapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
