// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edulend/loanassist/gen/ent/application"
	"github.com/edulend/loanassist/gen/ent/appointment"
	"github.com/edulend/loanassist/gen/ent/bank"
	"github.com/edulend/loanassist/gen/ent/document"
	"github.com/edulend/loanassist/gen/ent/predicate"
	"github.com/edulend/loanassist/gen/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApplication = "Application"
	TypeAppointment = "Appointment"
	TypeBank        = "Bank"
	TypeDocument    = "Document"
	TypeUser        = "User"
)

// ApplicationMutation represents an operation that mutates the Application nodes in the graph.
type ApplicationMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	user_email               *string
	bank_id                  *int
	addbank_id               *int
	status                   *string
	filled_form_fields       *json.RawMessage
	appendfilled_form_fields json.RawMessage
	timestamp                *time.Time
	clearedFields            map[string]struct{}
	appointments             map[int]struct{}
	removedappointments      map[int]struct{}
	clearedappointments      bool
	done                     bool
	oldValue                 func(context.Context) (*Application, error)
	predicates               []predicate.Application
}

var _ ent.Mutation = (*ApplicationMutation)(nil)

// applicationOption allows management of the mutation configuration using functional options.
type applicationOption func(*ApplicationMutation)

// newApplicationMutation creates new mutation for the Application entity.
func newApplicationMutation(c config, op Op, opts ...applicationOption) *ApplicationMutation {
	m := &ApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationID sets the ID field of the mutation.
func withApplicationID(id int) applicationOption {
	return func(m *ApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *Application
		)
		m.oldValue = func(ctx context.Context) (*Application, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Application.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplication sets the old Application of the mutation.
func withApplication(node *Application) applicationOption {
	return func(m *ApplicationMutation) {
		m.oldValue = func(context.Context) (*Application, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Application.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserEmail sets the "user_email" field.
func (m *ApplicationMutation) SetUserEmail(s string) {
	m.user_email = &s
}

// UserEmail returns the value of the "user_email" field in the mutation.
func (m *ApplicationMutation) UserEmail() (r string, exists bool) {
	v := m.user_email
	if v == nil {
		return
	}
	return *v, true
}

// OldUserEmail returns the old "user_email" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldUserEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserEmail: %w", err)
	}
	return oldValue.UserEmail, nil
}

// ResetUserEmail resets all changes to the "user_email" field.
func (m *ApplicationMutation) ResetUserEmail() {
	m.user_email = nil
}

// SetBankID sets the "bank_id" field.
func (m *ApplicationMutation) SetBankID(i int) {
	m.bank_id = &i
	m.addbank_id = nil
}

// BankID returns the value of the "bank_id" field in the mutation.
func (m *ApplicationMutation) BankID() (r int, exists bool) {
	v := m.bank_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBankID returns the old "bank_id" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldBankID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankID: %w", err)
	}
	return oldValue.BankID, nil
}

// AddBankID adds i to the "bank_id" field.
func (m *ApplicationMutation) AddBankID(i int) {
	if m.addbank_id != nil {
		*m.addbank_id += i
	} else {
		m.addbank_id = &i
	}
}

// AddedBankID returns the value that was added to the "bank_id" field in this mutation.
func (m *ApplicationMutation) AddedBankID() (r int, exists bool) {
	v := m.addbank_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetBankID resets all changes to the "bank_id" field.
func (m *ApplicationMutation) ResetBankID() {
	m.bank_id = nil
	m.addbank_id = nil
}

// SetStatus sets the "status" field.
func (m *ApplicationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ApplicationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApplicationMutation) ResetStatus() {
	m.status = nil
}

// SetFilledFormFields sets the "filled_form_fields" field.
func (m *ApplicationMutation) SetFilledFormFields(jm json.RawMessage) {
	m.filled_form_fields = &jm
	m.appendfilled_form_fields = nil
}

// FilledFormFields returns the value of the "filled_form_fields" field in the mutation.
func (m *ApplicationMutation) FilledFormFields() (r json.RawMessage, exists bool) {
	v := m.filled_form_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFilledFormFields returns the old "filled_form_fields" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldFilledFormFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilledFormFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilledFormFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilledFormFields: %w", err)
	}
	return oldValue.FilledFormFields, nil
}

// AppendFilledFormFields adds jm to the "filled_form_fields" field.
func (m *ApplicationMutation) AppendFilledFormFields(jm json.RawMessage) {
	m.appendfilled_form_fields = append(m.appendfilled_form_fields, jm...)
}

// AppendedFilledFormFields returns the list of values that were appended to the "filled_form_fields" field in this mutation.
func (m *ApplicationMutation) AppendedFilledFormFields() (json.RawMessage, bool) {
	if len(m.appendfilled_form_fields) == 0 {
		return nil, false
	}
	return m.appendfilled_form_fields, true
}

// ResetFilledFormFields resets all changes to the "filled_form_fields" field.
func (m *ApplicationMutation) ResetFilledFormFields() {
	m.filled_form_fields = nil
	m.appendfilled_form_fields = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ApplicationMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ApplicationMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ApplicationMutation) ResetTimestamp() {
	m.timestamp = nil
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by ids.
func (m *ApplicationMutation) AddAppointmentIDs(ids ...int) {
	if m.appointments == nil {
		m.appointments = make(map[int]struct{})
	}
	for i := range ids {
		m.appointments[ids[i]] = struct{}{}
	}
}

// ClearAppointments clears the "appointments" edge to the Appointment entity.
func (m *ApplicationMutation) ClearAppointments() {
	m.clearedappointments = true
}

// AppointmentsCleared reports if the "appointments" edge to the Appointment entity was cleared.
func (m *ApplicationMutation) AppointmentsCleared() bool {
	return m.clearedappointments
}

// RemoveAppointmentIDs removes the "appointments" edge to the Appointment entity by IDs.
func (m *ApplicationMutation) RemoveAppointmentIDs(ids ...int) {
	if m.removedappointments == nil {
		m.removedappointments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.appointments, ids[i])
		m.removedappointments[ids[i]] = struct{}{}
	}
}

// RemovedAppointments returns the removed IDs of the "appointments" edge to the Appointment entity.
func (m *ApplicationMutation) RemovedAppointmentsIDs() (ids []int) {
	for id := range m.removedappointments {
		ids = append(ids, id)
	}
	return
}

// AppointmentsIDs returns the "appointments" edge IDs in the mutation.
func (m *ApplicationMutation) AppointmentsIDs() (ids []int) {
	for id := range m.appointments {
		ids = append(ids, id)
	}
	return
}

// ResetAppointments resets all changes to the "appointments" edge.
func (m *ApplicationMutation) ResetAppointments() {
	m.appointments = nil
	m.clearedappointments = false
	m.removedappointments = nil
}

// Where appends a list predicates to the ApplicationMutation builder.
func (m *ApplicationMutation) Where(ps ...predicate.Application) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Application, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Application).
func (m *ApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_email != nil {
		fields = append(fields, application.FieldUserEmail)
	}
	if m.bank_id != nil {
		fields = append(fields, application.FieldBankID)
	}
	if m.status != nil {
		fields = append(fields, application.FieldStatus)
	}
	if m.filled_form_fields != nil {
		fields = append(fields, application.FieldFilledFormFields)
	}
	if m.timestamp != nil {
		fields = append(fields, application.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case application.FieldUserEmail:
		return m.UserEmail()
	case application.FieldBankID:
		return m.BankID()
	case application.FieldStatus:
		return m.Status()
	case application.FieldFilledFormFields:
		return m.FilledFormFields()
	case application.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case application.FieldUserEmail:
		return m.OldUserEmail(ctx)
	case application.FieldBankID:
		return m.OldBankID(ctx)
	case application.FieldStatus:
		return m.OldStatus(ctx)
	case application.FieldFilledFormFields:
		return m.OldFilledFormFields(ctx)
	case application.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown Application field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case application.FieldUserEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserEmail(v)
		return nil
	case application.FieldBankID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankID(v)
		return nil
	case application.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case application.FieldFilledFormFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilledFormFields(v)
		return nil
	case application.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationMutation) AddedFields() []string {
	var fields []string
	if m.addbank_id != nil {
		fields = append(fields, application.FieldBankID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case application.FieldBankID:
		return m.AddedBankID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case application.FieldBankID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBankID(v)
		return nil
	}
	return fmt.Errorf("unknown Application numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Application nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationMutation) ResetField(name string) error {
	switch name {
	case application.FieldUserEmail:
		m.ResetUserEmail()
		return nil
	case application.FieldBankID:
		m.ResetBankID()
		return nil
	case application.FieldStatus:
		m.ResetStatus()
		return nil
	case application.FieldFilledFormFields:
		m.ResetFilledFormFields()
		return nil
	case application.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.appointments != nil {
		edges = append(edges, application.EdgeAppointments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeAppointments:
		ids := make([]ent.Value, 0, len(m.appointments))
		for id := range m.appointments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedappointments != nil {
		edges = append(edges, application.EdgeAppointments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeAppointments:
		ids := make([]ent.Value, 0, len(m.removedappointments))
		for id := range m.removedappointments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedappointments {
		edges = append(edges, application.EdgeAppointments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationMutation) EdgeCleared(name string) bool {
	switch name {
	case application.EdgeAppointments:
		return m.clearedappointments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Application unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationMutation) ResetEdge(name string) error {
	switch name {
	case application.EdgeAppointments:
		m.ResetAppointments()
		return nil
	}
	return fmt.Errorf("unknown Application edge %s", name)
}

// AppointmentMutation represents an operation that mutates the Appointment nodes in the graph.
type AppointmentMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_email         *string
	bank_id            *int
	addbank_id         *int
	scheduled_time     *string
	created_at         *time.Time
	status             *string
	clearedFields      map[string]struct{}
	application        *int
	clearedapplication bool
	done               bool
	oldValue           func(context.Context) (*Appointment, error)
	predicates         []predicate.Appointment
}

var _ ent.Mutation = (*AppointmentMutation)(nil)

// appointmentOption allows management of the mutation configuration using functional options.
type appointmentOption func(*AppointmentMutation)

// newAppointmentMutation creates new mutation for the Appointment entity.
func newAppointmentMutation(c config, op Op, opts ...appointmentOption) *AppointmentMutation {
	m := &AppointmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentID sets the ID field of the mutation.
func withAppointmentID(id int) appointmentOption {
	return func(m *AppointmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Appointment
		)
		m.oldValue = func(ctx context.Context) (*Appointment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Appointment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointment sets the old Appointment of the mutation.
func withAppointment(node *Appointment) appointmentOption {
	return func(m *AppointmentMutation) {
		m.oldValue = func(context.Context) (*Appointment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Appointment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAppID sets the "app_id" field.
func (m *AppointmentMutation) SetAppID(i int) {
	m.application = &i
}

// AppID returns the value of the "app_id" field in the mutation.
func (m *AppointmentMutation) AppID() (r int, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldAppID returns the old "app_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldAppID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppID: %w", err)
	}
	return oldValue.AppID, nil
}

// ResetAppID resets all changes to the "app_id" field.
func (m *AppointmentMutation) ResetAppID() {
	m.application = nil
}

// SetUserEmail sets the "user_email" field.
func (m *AppointmentMutation) SetUserEmail(s string) {
	m.user_email = &s
}

// UserEmail returns the value of the "user_email" field in the mutation.
func (m *AppointmentMutation) UserEmail() (r string, exists bool) {
	v := m.user_email
	if v == nil {
		return
	}
	return *v, true
}

// OldUserEmail returns the old "user_email" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldUserEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserEmail: %w", err)
	}
	return oldValue.UserEmail, nil
}

// ResetUserEmail resets all changes to the "user_email" field.
func (m *AppointmentMutation) ResetUserEmail() {
	m.user_email = nil
}

// SetBankID sets the "bank_id" field.
func (m *AppointmentMutation) SetBankID(i int) {
	m.bank_id = &i
	m.addbank_id = nil
}

// BankID returns the value of the "bank_id" field in the mutation.
func (m *AppointmentMutation) BankID() (r int, exists bool) {
	v := m.bank_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBankID returns the old "bank_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldBankID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankID: %w", err)
	}
	return oldValue.BankID, nil
}

// AddBankID adds i to the "bank_id" field.
func (m *AppointmentMutation) AddBankID(i int) {
	if m.addbank_id != nil {
		*m.addbank_id += i
	} else {
		m.addbank_id = &i
	}
}

// AddedBankID returns the value that was added to the "bank_id" field in this mutation.
func (m *AppointmentMutation) AddedBankID() (r int, exists bool) {
	v := m.addbank_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetBankID resets all changes to the "bank_id" field.
func (m *AppointmentMutation) ResetBankID() {
	m.bank_id = nil
	m.addbank_id = nil
}

// SetScheduledTime sets the "scheduled_time" field.
func (m *AppointmentMutation) SetScheduledTime(s string) {
	m.scheduled_time = &s
}

// ScheduledTime returns the value of the "scheduled_time" field in the mutation.
func (m *AppointmentMutation) ScheduledTime() (r string, exists bool) {
	v := m.scheduled_time
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledTime returns the old "scheduled_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldScheduledTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledTime: %w", err)
	}
	return oldValue.ScheduledTime, nil
}

// ResetScheduledTime resets all changes to the "scheduled_time" field.
func (m *AppointmentMutation) ResetScheduledTime() {
	m.scheduled_time = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStatus sets the "status" field.
func (m *AppointmentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AppointmentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AppointmentMutation) ResetStatus() {
	m.status = nil
}

// SetApplicationID sets the "application" edge to the Application entity by id.
func (m *AppointmentMutation) SetApplicationID(id int) {
	m.application = &id
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *AppointmentMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[appointment.FieldAppID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *AppointmentMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationID returns the "application" edge ID in the mutation.
func (m *AppointmentMutation) ApplicationID() (id int, exists bool) {
	if m.application != nil {
		return *m.application, true
	}
	return
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *AppointmentMutation) ApplicationIDs() (ids []int) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *AppointmentMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// Where appends a list predicates to the AppointmentMutation builder.
func (m *AppointmentMutation) Where(ps ...predicate.Appointment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Appointment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Appointment).
func (m *AppointmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.application != nil {
		fields = append(fields, appointment.FieldAppID)
	}
	if m.user_email != nil {
		fields = append(fields, appointment.FieldUserEmail)
	}
	if m.bank_id != nil {
		fields = append(fields, appointment.FieldBankID)
	}
	if m.scheduled_time != nil {
		fields = append(fields, appointment.FieldScheduledTime)
	}
	if m.created_at != nil {
		fields = append(fields, appointment.FieldCreatedAt)
	}
	if m.status != nil {
		fields = append(fields, appointment.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldAppID:
		return m.AppID()
	case appointment.FieldUserEmail:
		return m.UserEmail()
	case appointment.FieldBankID:
		return m.BankID()
	case appointment.FieldScheduledTime:
		return m.ScheduledTime()
	case appointment.FieldCreatedAt:
		return m.CreatedAt()
	case appointment.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointment.FieldAppID:
		return m.OldAppID(ctx)
	case appointment.FieldUserEmail:
		return m.OldUserEmail(ctx)
	case appointment.FieldBankID:
		return m.OldBankID(ctx)
	case appointment.FieldScheduledTime:
		return m.OldScheduledTime(ctx)
	case appointment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointment.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Appointment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldAppID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppID(v)
		return nil
	case appointment.FieldUserEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserEmail(v)
		return nil
	case appointment.FieldBankID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankID(v)
		return nil
	case appointment.FieldScheduledTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledTime(v)
		return nil
	case appointment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointment.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentMutation) AddedFields() []string {
	var fields []string
	if m.addbank_id != nil {
		fields = append(fields, appointment.FieldBankID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldBankID:
		return m.AddedBankID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldBankID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBankID(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Appointment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentMutation) ResetField(name string) error {
	switch name {
	case appointment.FieldAppID:
		m.ResetAppID()
		return nil
	case appointment.FieldUserEmail:
		m.ResetUserEmail()
		return nil
	case appointment.FieldBankID:
		m.ResetBankID()
		return nil
	case appointment.FieldScheduledTime:
		m.ResetScheduledTime()
		return nil
	case appointment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointment.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.application != nil {
		edges = append(edges, appointment.EdgeApplication)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case appointment.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplication {
		edges = append(edges, appointment.EdgeApplication)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentMutation) EdgeCleared(name string) bool {
	switch name {
	case appointment.EdgeApplication:
		return m.clearedapplication
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentMutation) ClearEdge(name string) error {
	switch name {
	case appointment.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown Appointment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentMutation) ResetEdge(name string) error {
	switch name {
	case appointment.EdgeApplication:
		m.ResetApplication()
		return nil
	}
	return fmt.Errorf("unknown Appointment edge %s", name)
}

// BankMutation represents an operation that mutates the Bank nodes in the graph.
type BankMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	bank_name             *string
	min_gpa               *float64
	addmin_gpa            *float64
	max_income            *float64
	addmax_income         *float64
	base_interest_rate    *float64
	addbase_interest_rate *float64
	max_loan_amount       *int
	addmax_loan_amount    *int
	approval_rate         *int
	addapproval_rate      *int
	description           *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Bank, error)
	predicates            []predicate.Bank
}

var _ ent.Mutation = (*BankMutation)(nil)

// bankOption allows management of the mutation configuration using functional options.
type bankOption func(*BankMutation)

// newBankMutation creates new mutation for the Bank entity.
func newBankMutation(c config, op Op, opts ...bankOption) *BankMutation {
	m := &BankMutation{
		config:        c,
		op:            op,
		typ:           TypeBank,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBankID sets the ID field of the mutation.
func withBankID(id int) bankOption {
	return func(m *BankMutation) {
		var (
			err   error
			once  sync.Once
			value *Bank
		)
		m.oldValue = func(ctx context.Context) (*Bank, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bank.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBank sets the old Bank of the mutation.
func withBank(node *Bank) bankOption {
	return func(m *BankMutation) {
		m.oldValue = func(context.Context) (*Bank, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BankMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BankMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bank entities.
func (m *BankMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BankMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BankMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bank.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBankName sets the "bank_name" field.
func (m *BankMutation) SetBankName(s string) {
	m.bank_name = &s
}

// BankName returns the value of the "bank_name" field in the mutation.
func (m *BankMutation) BankName() (r string, exists bool) {
	v := m.bank_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBankName returns the old "bank_name" field's value of the Bank entity.
// If the Bank object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankMutation) OldBankName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankName: %w", err)
	}
	return oldValue.BankName, nil
}

// ResetBankName resets all changes to the "bank_name" field.
func (m *BankMutation) ResetBankName() {
	m.bank_name = nil
}

// SetMinGpa sets the "min_gpa" field.
func (m *BankMutation) SetMinGpa(f float64) {
	m.min_gpa = &f
	m.addmin_gpa = nil
}

// MinGpa returns the value of the "min_gpa" field in the mutation.
func (m *BankMutation) MinGpa() (r float64, exists bool) {
	v := m.min_gpa
	if v == nil {
		return
	}
	return *v, true
}

// OldMinGpa returns the old "min_gpa" field's value of the Bank entity.
// If the Bank object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankMutation) OldMinGpa(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinGpa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinGpa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinGpa: %w", err)
	}
	return oldValue.MinGpa, nil
}

// AddMinGpa adds f to the "min_gpa" field.
func (m *BankMutation) AddMinGpa(f float64) {
	if m.addmin_gpa != nil {
		*m.addmin_gpa += f
	} else {
		m.addmin_gpa = &f
	}
}

// AddedMinGpa returns the value that was added to the "min_gpa" field in this mutation.
func (m *BankMutation) AddedMinGpa() (r float64, exists bool) {
	v := m.addmin_gpa
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinGpa resets all changes to the "min_gpa" field.
func (m *BankMutation) ResetMinGpa() {
	m.min_gpa = nil
	m.addmin_gpa = nil
}

// SetMaxIncome sets the "max_income" field.
func (m *BankMutation) SetMaxIncome(f float64) {
	m.max_income = &f
	m.addmax_income = nil
}

// MaxIncome returns the value of the "max_income" field in the mutation.
func (m *BankMutation) MaxIncome() (r float64, exists bool) {
	v := m.max_income
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxIncome returns the old "max_income" field's value of the Bank entity.
// If the Bank object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankMutation) OldMaxIncome(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxIncome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxIncome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxIncome: %w", err)
	}
	return oldValue.MaxIncome, nil
}

// AddMaxIncome adds f to the "max_income" field.
func (m *BankMutation) AddMaxIncome(f float64) {
	if m.addmax_income != nil {
		*m.addmax_income += f
	} else {
		m.addmax_income = &f
	}
}

// AddedMaxIncome returns the value that was added to the "max_income" field in this mutation.
func (m *BankMutation) AddedMaxIncome() (r float64, exists bool) {
	v := m.addmax_income
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxIncome resets all changes to the "max_income" field.
func (m *BankMutation) ResetMaxIncome() {
	m.max_income = nil
	m.addmax_income = nil
}

// SetBaseInterestRate sets the "base_interest_rate" field.
func (m *BankMutation) SetBaseInterestRate(f float64) {
	m.base_interest_rate = &f
	m.addbase_interest_rate = nil
}

// BaseInterestRate returns the value of the "base_interest_rate" field in the mutation.
func (m *BankMutation) BaseInterestRate() (r float64, exists bool) {
	v := m.base_interest_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseInterestRate returns the old "base_interest_rate" field's value of the Bank entity.
// If the Bank object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankMutation) OldBaseInterestRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseInterestRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseInterestRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseInterestRate: %w", err)
	}
	return oldValue.BaseInterestRate, nil
}

// AddBaseInterestRate adds f to the "base_interest_rate" field.
func (m *BankMutation) AddBaseInterestRate(f float64) {
	if m.addbase_interest_rate != nil {
		*m.addbase_interest_rate += f
	} else {
		m.addbase_interest_rate = &f
	}
}

// AddedBaseInterestRate returns the value that was added to the "base_interest_rate" field in this mutation.
func (m *BankMutation) AddedBaseInterestRate() (r float64, exists bool) {
	v := m.addbase_interest_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaseInterestRate resets all changes to the "base_interest_rate" field.
func (m *BankMutation) ResetBaseInterestRate() {
	m.base_interest_rate = nil
	m.addbase_interest_rate = nil
}

// SetMaxLoanAmount sets the "max_loan_amount" field.
func (m *BankMutation) SetMaxLoanAmount(i int) {
	m.max_loan_amount = &i
	m.addmax_loan_amount = nil
}

// MaxLoanAmount returns the value of the "max_loan_amount" field in the mutation.
func (m *BankMutation) MaxLoanAmount() (r int, exists bool) {
	v := m.max_loan_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxLoanAmount returns the old "max_loan_amount" field's value of the Bank entity.
// If the Bank object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankMutation) OldMaxLoanAmount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxLoanAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxLoanAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxLoanAmount: %w", err)
	}
	return oldValue.MaxLoanAmount, nil
}

// AddMaxLoanAmount adds i to the "max_loan_amount" field.
func (m *BankMutation) AddMaxLoanAmount(i int) {
	if m.addmax_loan_amount != nil {
		*m.addmax_loan_amount += i
	} else {
		m.addmax_loan_amount = &i
	}
}

// AddedMaxLoanAmount returns the value that was added to the "max_loan_amount" field in this mutation.
func (m *BankMutation) AddedMaxLoanAmount() (r int, exists bool) {
	v := m.addmax_loan_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxLoanAmount resets all changes to the "max_loan_amount" field.
func (m *BankMutation) ResetMaxLoanAmount() {
	m.max_loan_amount = nil
	m.addmax_loan_amount = nil
}

// SetApprovalRate sets the "approval_rate" field.
func (m *BankMutation) SetApprovalRate(i int) {
	m.approval_rate = &i
	m.addapproval_rate = nil
}

// ApprovalRate returns the value of the "approval_rate" field in the mutation.
func (m *BankMutation) ApprovalRate() (r int, exists bool) {
	v := m.approval_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalRate returns the old "approval_rate" field's value of the Bank entity.
// If the Bank object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankMutation) OldApprovalRate(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalRate: %w", err)
	}
	return oldValue.ApprovalRate, nil
}

// AddApprovalRate adds i to the "approval_rate" field.
func (m *BankMutation) AddApprovalRate(i int) {
	if m.addapproval_rate != nil {
		*m.addapproval_rate += i
	} else {
		m.addapproval_rate = &i
	}
}

// AddedApprovalRate returns the value that was added to the "approval_rate" field in this mutation.
func (m *BankMutation) AddedApprovalRate() (r int, exists bool) {
	v := m.addapproval_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetApprovalRate resets all changes to the "approval_rate" field.
func (m *BankMutation) ResetApprovalRate() {
	m.approval_rate = nil
	m.addapproval_rate = nil
}

// SetDescription sets the "description" field.
func (m *BankMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BankMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Bank entity.
// If the Bank object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *BankMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[bank.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *BankMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[bank.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *BankMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, bank.FieldDescription)
}

// Where appends a list predicates to the BankMutation builder.
func (m *BankMutation) Where(ps ...predicate.Bank) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BankMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BankMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bank, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BankMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BankMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bank).
func (m *BankMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BankMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.bank_name != nil {
		fields = append(fields, bank.FieldBankName)
	}
	if m.min_gpa != nil {
		fields = append(fields, bank.FieldMinGpa)
	}
	if m.max_income != nil {
		fields = append(fields, bank.FieldMaxIncome)
	}
	if m.base_interest_rate != nil {
		fields = append(fields, bank.FieldBaseInterestRate)
	}
	if m.max_loan_amount != nil {
		fields = append(fields, bank.FieldMaxLoanAmount)
	}
	if m.approval_rate != nil {
		fields = append(fields, bank.FieldApprovalRate)
	}
	if m.description != nil {
		fields = append(fields, bank.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BankMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bank.FieldBankName:
		return m.BankName()
	case bank.FieldMinGpa:
		return m.MinGpa()
	case bank.FieldMaxIncome:
		return m.MaxIncome()
	case bank.FieldBaseInterestRate:
		return m.BaseInterestRate()
	case bank.FieldMaxLoanAmount:
		return m.MaxLoanAmount()
	case bank.FieldApprovalRate:
		return m.ApprovalRate()
	case bank.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BankMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bank.FieldBankName:
		return m.OldBankName(ctx)
	case bank.FieldMinGpa:
		return m.OldMinGpa(ctx)
	case bank.FieldMaxIncome:
		return m.OldMaxIncome(ctx)
	case bank.FieldBaseInterestRate:
		return m.OldBaseInterestRate(ctx)
	case bank.FieldMaxLoanAmount:
		return m.OldMaxLoanAmount(ctx)
	case bank.FieldApprovalRate:
		return m.OldApprovalRate(ctx)
	case bank.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Bank field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BankMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bank.FieldBankName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankName(v)
		return nil
	case bank.FieldMinGpa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinGpa(v)
		return nil
	case bank.FieldMaxIncome:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxIncome(v)
		return nil
	case bank.FieldBaseInterestRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseInterestRate(v)
		return nil
	case bank.FieldMaxLoanAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxLoanAmount(v)
		return nil
	case bank.FieldApprovalRate:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalRate(v)
		return nil
	case bank.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Bank field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BankMutation) AddedFields() []string {
	var fields []string
	if m.addmin_gpa != nil {
		fields = append(fields, bank.FieldMinGpa)
	}
	if m.addmax_income != nil {
		fields = append(fields, bank.FieldMaxIncome)
	}
	if m.addbase_interest_rate != nil {
		fields = append(fields, bank.FieldBaseInterestRate)
	}
	if m.addmax_loan_amount != nil {
		fields = append(fields, bank.FieldMaxLoanAmount)
	}
	if m.addapproval_rate != nil {
		fields = append(fields, bank.FieldApprovalRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BankMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bank.FieldMinGpa:
		return m.AddedMinGpa()
	case bank.FieldMaxIncome:
		return m.AddedMaxIncome()
	case bank.FieldBaseInterestRate:
		return m.AddedBaseInterestRate()
	case bank.FieldMaxLoanAmount:
		return m.AddedMaxLoanAmount()
	case bank.FieldApprovalRate:
		return m.AddedApprovalRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BankMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bank.FieldMinGpa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinGpa(v)
		return nil
	case bank.FieldMaxIncome:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxIncome(v)
		return nil
	case bank.FieldBaseInterestRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaseInterestRate(v)
		return nil
	case bank.FieldMaxLoanAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxLoanAmount(v)
		return nil
	case bank.FieldApprovalRate:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddApprovalRate(v)
		return nil
	}
	return fmt.Errorf("unknown Bank numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BankMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bank.FieldDescription) {
		fields = append(fields, bank.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BankMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BankMutation) ClearField(name string) error {
	switch name {
	case bank.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Bank nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BankMutation) ResetField(name string) error {
	switch name {
	case bank.FieldBankName:
		m.ResetBankName()
		return nil
	case bank.FieldMinGpa:
		m.ResetMinGpa()
		return nil
	case bank.FieldMaxIncome:
		m.ResetMaxIncome()
		return nil
	case bank.FieldBaseInterestRate:
		m.ResetBaseInterestRate()
		return nil
	case bank.FieldMaxLoanAmount:
		m.ResetMaxLoanAmount()
		return nil
	case bank.FieldApprovalRate:
		m.ResetApprovalRate()
		return nil
	case bank.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Bank field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BankMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BankMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BankMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BankMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BankMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BankMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BankMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Bank unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BankMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Bank edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	email                       *string
	upload_time                 *time.Time
	source_files                *string
	extracted_name              *string
	extracted_course            *string
	extracted_college           *string
	extracted_usn               *string
	extracted_dob               *string
	extracted_gpa               *float64
	addextracted_gpa            *float64
	extracted_income            *float64
	addextracted_income         *float64
	extracted_loan_amount       *float64
	addextracted_loan_amount    *float64
	extracted_admission_year    *int
	addextracted_admission_year *int
	raw_text                    *string
	parsed_json                 *json.RawMessage
	appendparsed_json           json.RawMessage
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*Document, error)
	predicates                  []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id int) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *DocumentMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *DocumentMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *DocumentMutation) ResetEmail() {
	m.email = nil
}

// SetUploadTime sets the "upload_time" field.
func (m *DocumentMutation) SetUploadTime(t time.Time) {
	m.upload_time = &t
}

// UploadTime returns the value of the "upload_time" field in the mutation.
func (m *DocumentMutation) UploadTime() (r time.Time, exists bool) {
	v := m.upload_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadTime returns the old "upload_time" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadTime: %w", err)
	}
	return oldValue.UploadTime, nil
}

// ResetUploadTime resets all changes to the "upload_time" field.
func (m *DocumentMutation) ResetUploadTime() {
	m.upload_time = nil
}

// SetSourceFiles sets the "source_files" field.
func (m *DocumentMutation) SetSourceFiles(s string) {
	m.source_files = &s
}

// SourceFiles returns the value of the "source_files" field in the mutation.
func (m *DocumentMutation) SourceFiles() (r string, exists bool) {
	v := m.source_files
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFiles returns the old "source_files" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourceFiles(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFiles: %w", err)
	}
	return oldValue.SourceFiles, nil
}

// ResetSourceFiles resets all changes to the "source_files" field.
func (m *DocumentMutation) ResetSourceFiles() {
	m.source_files = nil
}

// SetExtractedName sets the "extracted_name" field.
func (m *DocumentMutation) SetExtractedName(s string) {
	m.extracted_name = &s
}

// ExtractedName returns the value of the "extracted_name" field in the mutation.
func (m *DocumentMutation) ExtractedName() (r string, exists bool) {
	v := m.extracted_name
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedName returns the old "extracted_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedName: %w", err)
	}
	return oldValue.ExtractedName, nil
}

// ClearExtractedName clears the value of the "extracted_name" field.
func (m *DocumentMutation) ClearExtractedName() {
	m.extracted_name = nil
	m.clearedFields[document.FieldExtractedName] = struct{}{}
}

// ExtractedNameCleared returns if the "extracted_name" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedNameCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedName]
	return ok
}

// ResetExtractedName resets all changes to the "extracted_name" field.
func (m *DocumentMutation) ResetExtractedName() {
	m.extracted_name = nil
	delete(m.clearedFields, document.FieldExtractedName)
}

// SetExtractedCourse sets the "extracted_course" field.
func (m *DocumentMutation) SetExtractedCourse(s string) {
	m.extracted_course = &s
}

// ExtractedCourse returns the value of the "extracted_course" field in the mutation.
func (m *DocumentMutation) ExtractedCourse() (r string, exists bool) {
	v := m.extracted_course
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedCourse returns the old "extracted_course" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedCourse(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedCourse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedCourse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedCourse: %w", err)
	}
	return oldValue.ExtractedCourse, nil
}

// ClearExtractedCourse clears the value of the "extracted_course" field.
func (m *DocumentMutation) ClearExtractedCourse() {
	m.extracted_course = nil
	m.clearedFields[document.FieldExtractedCourse] = struct{}{}
}

// ExtractedCourseCleared returns if the "extracted_course" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedCourseCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedCourse]
	return ok
}

// ResetExtractedCourse resets all changes to the "extracted_course" field.
func (m *DocumentMutation) ResetExtractedCourse() {
	m.extracted_course = nil
	delete(m.clearedFields, document.FieldExtractedCourse)
}

// SetExtractedCollege sets the "extracted_college" field.
func (m *DocumentMutation) SetExtractedCollege(s string) {
	m.extracted_college = &s
}

// ExtractedCollege returns the value of the "extracted_college" field in the mutation.
func (m *DocumentMutation) ExtractedCollege() (r string, exists bool) {
	v := m.extracted_college
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedCollege returns the old "extracted_college" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedCollege(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedCollege is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedCollege requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedCollege: %w", err)
	}
	return oldValue.ExtractedCollege, nil
}

// ClearExtractedCollege clears the value of the "extracted_college" field.
func (m *DocumentMutation) ClearExtractedCollege() {
	m.extracted_college = nil
	m.clearedFields[document.FieldExtractedCollege] = struct{}{}
}

// ExtractedCollegeCleared returns if the "extracted_college" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedCollegeCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedCollege]
	return ok
}

// ResetExtractedCollege resets all changes to the "extracted_college" field.
func (m *DocumentMutation) ResetExtractedCollege() {
	m.extracted_college = nil
	delete(m.clearedFields, document.FieldExtractedCollege)
}

// SetExtractedUsn sets the "extracted_usn" field.
func (m *DocumentMutation) SetExtractedUsn(s string) {
	m.extracted_usn = &s
}

// ExtractedUsn returns the value of the "extracted_usn" field in the mutation.
func (m *DocumentMutation) ExtractedUsn() (r string, exists bool) {
	v := m.extracted_usn
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedUsn returns the old "extracted_usn" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedUsn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedUsn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedUsn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedUsn: %w", err)
	}
	return oldValue.ExtractedUsn, nil
}

// ClearExtractedUsn clears the value of the "extracted_usn" field.
func (m *DocumentMutation) ClearExtractedUsn() {
	m.extracted_usn = nil
	m.clearedFields[document.FieldExtractedUsn] = struct{}{}
}

// ExtractedUsnCleared returns if the "extracted_usn" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedUsnCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedUsn]
	return ok
}

// ResetExtractedUsn resets all changes to the "extracted_usn" field.
func (m *DocumentMutation) ResetExtractedUsn() {
	m.extracted_usn = nil
	delete(m.clearedFields, document.FieldExtractedUsn)
}

// SetExtractedDob sets the "extracted_dob" field.
func (m *DocumentMutation) SetExtractedDob(s string) {
	m.extracted_dob = &s
}

// ExtractedDob returns the value of the "extracted_dob" field in the mutation.
func (m *DocumentMutation) ExtractedDob() (r string, exists bool) {
	v := m.extracted_dob
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedDob returns the old "extracted_dob" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedDob(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedDob is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedDob requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedDob: %w", err)
	}
	return oldValue.ExtractedDob, nil
}

// ClearExtractedDob clears the value of the "extracted_dob" field.
func (m *DocumentMutation) ClearExtractedDob() {
	m.extracted_dob = nil
	m.clearedFields[document.FieldExtractedDob] = struct{}{}
}

// ExtractedDobCleared returns if the "extracted_dob" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedDobCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedDob]
	return ok
}

// ResetExtractedDob resets all changes to the "extracted_dob" field.
func (m *DocumentMutation) ResetExtractedDob() {
	m.extracted_dob = nil
	delete(m.clearedFields, document.FieldExtractedDob)
}

// SetExtractedGpa sets the "extracted_gpa" field.
func (m *DocumentMutation) SetExtractedGpa(f float64) {
	m.extracted_gpa = &f
	m.addextracted_gpa = nil
}

// ExtractedGpa returns the value of the "extracted_gpa" field in the mutation.
func (m *DocumentMutation) ExtractedGpa() (r float64, exists bool) {
	v := m.extracted_gpa
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedGpa returns the old "extracted_gpa" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedGpa(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedGpa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedGpa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedGpa: %w", err)
	}
	return oldValue.ExtractedGpa, nil
}

// AddExtractedGpa adds f to the "extracted_gpa" field.
func (m *DocumentMutation) AddExtractedGpa(f float64) {
	if m.addextracted_gpa != nil {
		*m.addextracted_gpa += f
	} else {
		m.addextracted_gpa = &f
	}
}

// AddedExtractedGpa returns the value that was added to the "extracted_gpa" field in this mutation.
func (m *DocumentMutation) AddedExtractedGpa() (r float64, exists bool) {
	v := m.addextracted_gpa
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractedGpa clears the value of the "extracted_gpa" field.
func (m *DocumentMutation) ClearExtractedGpa() {
	m.extracted_gpa = nil
	m.addextracted_gpa = nil
	m.clearedFields[document.FieldExtractedGpa] = struct{}{}
}

// ExtractedGpaCleared returns if the "extracted_gpa" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedGpaCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedGpa]
	return ok
}

// ResetExtractedGpa resets all changes to the "extracted_gpa" field.
func (m *DocumentMutation) ResetExtractedGpa() {
	m.extracted_gpa = nil
	m.addextracted_gpa = nil
	delete(m.clearedFields, document.FieldExtractedGpa)
}

// SetExtractedIncome sets the "extracted_income" field.
func (m *DocumentMutation) SetExtractedIncome(f float64) {
	m.extracted_income = &f
	m.addextracted_income = nil
}

// ExtractedIncome returns the value of the "extracted_income" field in the mutation.
func (m *DocumentMutation) ExtractedIncome() (r float64, exists bool) {
	v := m.extracted_income
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedIncome returns the old "extracted_income" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedIncome(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedIncome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedIncome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedIncome: %w", err)
	}
	return oldValue.ExtractedIncome, nil
}

// AddExtractedIncome adds f to the "extracted_income" field.
func (m *DocumentMutation) AddExtractedIncome(f float64) {
	if m.addextracted_income != nil {
		*m.addextracted_income += f
	} else {
		m.addextracted_income = &f
	}
}

// AddedExtractedIncome returns the value that was added to the "extracted_income" field in this mutation.
func (m *DocumentMutation) AddedExtractedIncome() (r float64, exists bool) {
	v := m.addextracted_income
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractedIncome clears the value of the "extracted_income" field.
func (m *DocumentMutation) ClearExtractedIncome() {
	m.extracted_income = nil
	m.addextracted_income = nil
	m.clearedFields[document.FieldExtractedIncome] = struct{}{}
}

// ExtractedIncomeCleared returns if the "extracted_income" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedIncomeCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedIncome]
	return ok
}

// ResetExtractedIncome resets all changes to the "extracted_income" field.
func (m *DocumentMutation) ResetExtractedIncome() {
	m.extracted_income = nil
	m.addextracted_income = nil
	delete(m.clearedFields, document.FieldExtractedIncome)
}

// SetExtractedLoanAmount sets the "extracted_loan_amount" field.
func (m *DocumentMutation) SetExtractedLoanAmount(f float64) {
	m.extracted_loan_amount = &f
	m.addextracted_loan_amount = nil
}

// ExtractedLoanAmount returns the value of the "extracted_loan_amount" field in the mutation.
func (m *DocumentMutation) ExtractedLoanAmount() (r float64, exists bool) {
	v := m.extracted_loan_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedLoanAmount returns the old "extracted_loan_amount" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedLoanAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedLoanAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedLoanAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedLoanAmount: %w", err)
	}
	return oldValue.ExtractedLoanAmount, nil
}

// AddExtractedLoanAmount adds f to the "extracted_loan_amount" field.
func (m *DocumentMutation) AddExtractedLoanAmount(f float64) {
	if m.addextracted_loan_amount != nil {
		*m.addextracted_loan_amount += f
	} else {
		m.addextracted_loan_amount = &f
	}
}

// AddedExtractedLoanAmount returns the value that was added to the "extracted_loan_amount" field in this mutation.
func (m *DocumentMutation) AddedExtractedLoanAmount() (r float64, exists bool) {
	v := m.addextracted_loan_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractedLoanAmount clears the value of the "extracted_loan_amount" field.
func (m *DocumentMutation) ClearExtractedLoanAmount() {
	m.extracted_loan_amount = nil
	m.addextracted_loan_amount = nil
	m.clearedFields[document.FieldExtractedLoanAmount] = struct{}{}
}

// ExtractedLoanAmountCleared returns if the "extracted_loan_amount" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedLoanAmountCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedLoanAmount]
	return ok
}

// ResetExtractedLoanAmount resets all changes to the "extracted_loan_amount" field.
func (m *DocumentMutation) ResetExtractedLoanAmount() {
	m.extracted_loan_amount = nil
	m.addextracted_loan_amount = nil
	delete(m.clearedFields, document.FieldExtractedLoanAmount)
}

// SetExtractedAdmissionYear sets the "extracted_admission_year" field.
func (m *DocumentMutation) SetExtractedAdmissionYear(i int) {
	m.extracted_admission_year = &i
	m.addextracted_admission_year = nil
}

// ExtractedAdmissionYear returns the value of the "extracted_admission_year" field in the mutation.
func (m *DocumentMutation) ExtractedAdmissionYear() (r int, exists bool) {
	v := m.extracted_admission_year
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAdmissionYear returns the old "extracted_admission_year" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedAdmissionYear(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAdmissionYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAdmissionYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAdmissionYear: %w", err)
	}
	return oldValue.ExtractedAdmissionYear, nil
}

// AddExtractedAdmissionYear adds i to the "extracted_admission_year" field.
func (m *DocumentMutation) AddExtractedAdmissionYear(i int) {
	if m.addextracted_admission_year != nil {
		*m.addextracted_admission_year += i
	} else {
		m.addextracted_admission_year = &i
	}
}

// AddedExtractedAdmissionYear returns the value that was added to the "extracted_admission_year" field in this mutation.
func (m *DocumentMutation) AddedExtractedAdmissionYear() (r int, exists bool) {
	v := m.addextracted_admission_year
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractedAdmissionYear clears the value of the "extracted_admission_year" field.
func (m *DocumentMutation) ClearExtractedAdmissionYear() {
	m.extracted_admission_year = nil
	m.addextracted_admission_year = nil
	m.clearedFields[document.FieldExtractedAdmissionYear] = struct{}{}
}

// ExtractedAdmissionYearCleared returns if the "extracted_admission_year" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedAdmissionYearCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedAdmissionYear]
	return ok
}

// ResetExtractedAdmissionYear resets all changes to the "extracted_admission_year" field.
func (m *DocumentMutation) ResetExtractedAdmissionYear() {
	m.extracted_admission_year = nil
	m.addextracted_admission_year = nil
	delete(m.clearedFields, document.FieldExtractedAdmissionYear)
}

// SetRawText sets the "raw_text" field.
func (m *DocumentMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *DocumentMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *DocumentMutation) ResetRawText() {
	m.raw_text = nil
}

// SetParsedJSON sets the "parsed_json" field.
func (m *DocumentMutation) SetParsedJSON(jm json.RawMessage) {
	m.parsed_json = &jm
	m.appendparsed_json = nil
}

// ParsedJSON returns the value of the "parsed_json" field in the mutation.
func (m *DocumentMutation) ParsedJSON() (r json.RawMessage, exists bool) {
	v := m.parsed_json
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedJSON returns the old "parsed_json" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldParsedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedJSON: %w", err)
	}
	return oldValue.ParsedJSON, nil
}

// AppendParsedJSON adds jm to the "parsed_json" field.
func (m *DocumentMutation) AppendParsedJSON(jm json.RawMessage) {
	m.appendparsed_json = append(m.appendparsed_json, jm...)
}

// AppendedParsedJSON returns the list of values that were appended to the "parsed_json" field in this mutation.
func (m *DocumentMutation) AppendedParsedJSON() (json.RawMessage, bool) {
	if len(m.appendparsed_json) == 0 {
		return nil, false
	}
	return m.appendparsed_json, true
}

// ClearParsedJSON clears the value of the "parsed_json" field.
func (m *DocumentMutation) ClearParsedJSON() {
	m.parsed_json = nil
	m.appendparsed_json = nil
	m.clearedFields[document.FieldParsedJSON] = struct{}{}
}

// ParsedJSONCleared returns if the "parsed_json" field was cleared in this mutation.
func (m *DocumentMutation) ParsedJSONCleared() bool {
	_, ok := m.clearedFields[document.FieldParsedJSON]
	return ok
}

// ResetParsedJSON resets all changes to the "parsed_json" field.
func (m *DocumentMutation) ResetParsedJSON() {
	m.parsed_json = nil
	m.appendparsed_json = nil
	delete(m.clearedFields, document.FieldParsedJSON)
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.email != nil {
		fields = append(fields, document.FieldEmail)
	}
	if m.upload_time != nil {
		fields = append(fields, document.FieldUploadTime)
	}
	if m.source_files != nil {
		fields = append(fields, document.FieldSourceFiles)
	}
	if m.extracted_name != nil {
		fields = append(fields, document.FieldExtractedName)
	}
	if m.extracted_course != nil {
		fields = append(fields, document.FieldExtractedCourse)
	}
	if m.extracted_college != nil {
		fields = append(fields, document.FieldExtractedCollege)
	}
	if m.extracted_usn != nil {
		fields = append(fields, document.FieldExtractedUsn)
	}
	if m.extracted_dob != nil {
		fields = append(fields, document.FieldExtractedDob)
	}
	if m.extracted_gpa != nil {
		fields = append(fields, document.FieldExtractedGpa)
	}
	if m.extracted_income != nil {
		fields = append(fields, document.FieldExtractedIncome)
	}
	if m.extracted_loan_amount != nil {
		fields = append(fields, document.FieldExtractedLoanAmount)
	}
	if m.extracted_admission_year != nil {
		fields = append(fields, document.FieldExtractedAdmissionYear)
	}
	if m.raw_text != nil {
		fields = append(fields, document.FieldRawText)
	}
	if m.parsed_json != nil {
		fields = append(fields, document.FieldParsedJSON)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldEmail:
		return m.Email()
	case document.FieldUploadTime:
		return m.UploadTime()
	case document.FieldSourceFiles:
		return m.SourceFiles()
	case document.FieldExtractedName:
		return m.ExtractedName()
	case document.FieldExtractedCourse:
		return m.ExtractedCourse()
	case document.FieldExtractedCollege:
		return m.ExtractedCollege()
	case document.FieldExtractedUsn:
		return m.ExtractedUsn()
	case document.FieldExtractedDob:
		return m.ExtractedDob()
	case document.FieldExtractedGpa:
		return m.ExtractedGpa()
	case document.FieldExtractedIncome:
		return m.ExtractedIncome()
	case document.FieldExtractedLoanAmount:
		return m.ExtractedLoanAmount()
	case document.FieldExtractedAdmissionYear:
		return m.ExtractedAdmissionYear()
	case document.FieldRawText:
		return m.RawText()
	case document.FieldParsedJSON:
		return m.ParsedJSON()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldEmail:
		return m.OldEmail(ctx)
	case document.FieldUploadTime:
		return m.OldUploadTime(ctx)
	case document.FieldSourceFiles:
		return m.OldSourceFiles(ctx)
	case document.FieldExtractedName:
		return m.OldExtractedName(ctx)
	case document.FieldExtractedCourse:
		return m.OldExtractedCourse(ctx)
	case document.FieldExtractedCollege:
		return m.OldExtractedCollege(ctx)
	case document.FieldExtractedUsn:
		return m.OldExtractedUsn(ctx)
	case document.FieldExtractedDob:
		return m.OldExtractedDob(ctx)
	case document.FieldExtractedGpa:
		return m.OldExtractedGpa(ctx)
	case document.FieldExtractedIncome:
		return m.OldExtractedIncome(ctx)
	case document.FieldExtractedLoanAmount:
		return m.OldExtractedLoanAmount(ctx)
	case document.FieldExtractedAdmissionYear:
		return m.OldExtractedAdmissionYear(ctx)
	case document.FieldRawText:
		return m.OldRawText(ctx)
	case document.FieldParsedJSON:
		return m.OldParsedJSON(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case document.FieldUploadTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadTime(v)
		return nil
	case document.FieldSourceFiles:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFiles(v)
		return nil
	case document.FieldExtractedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedName(v)
		return nil
	case document.FieldExtractedCourse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedCourse(v)
		return nil
	case document.FieldExtractedCollege:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedCollege(v)
		return nil
	case document.FieldExtractedUsn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedUsn(v)
		return nil
	case document.FieldExtractedDob:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedDob(v)
		return nil
	case document.FieldExtractedGpa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedGpa(v)
		return nil
	case document.FieldExtractedIncome:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedIncome(v)
		return nil
	case document.FieldExtractedLoanAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedLoanAmount(v)
		return nil
	case document.FieldExtractedAdmissionYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAdmissionYear(v)
		return nil
	case document.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case document.FieldParsedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedJSON(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addextracted_gpa != nil {
		fields = append(fields, document.FieldExtractedGpa)
	}
	if m.addextracted_income != nil {
		fields = append(fields, document.FieldExtractedIncome)
	}
	if m.addextracted_loan_amount != nil {
		fields = append(fields, document.FieldExtractedLoanAmount)
	}
	if m.addextracted_admission_year != nil {
		fields = append(fields, document.FieldExtractedAdmissionYear)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldExtractedGpa:
		return m.AddedExtractedGpa()
	case document.FieldExtractedIncome:
		return m.AddedExtractedIncome()
	case document.FieldExtractedLoanAmount:
		return m.AddedExtractedLoanAmount()
	case document.FieldExtractedAdmissionYear:
		return m.AddedExtractedAdmissionYear()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldExtractedGpa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractedGpa(v)
		return nil
	case document.FieldExtractedIncome:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractedIncome(v)
		return nil
	case document.FieldExtractedLoanAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractedLoanAmount(v)
		return nil
	case document.FieldExtractedAdmissionYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractedAdmissionYear(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldExtractedName) {
		fields = append(fields, document.FieldExtractedName)
	}
	if m.FieldCleared(document.FieldExtractedCourse) {
		fields = append(fields, document.FieldExtractedCourse)
	}
	if m.FieldCleared(document.FieldExtractedCollege) {
		fields = append(fields, document.FieldExtractedCollege)
	}
	if m.FieldCleared(document.FieldExtractedUsn) {
		fields = append(fields, document.FieldExtractedUsn)
	}
	if m.FieldCleared(document.FieldExtractedDob) {
		fields = append(fields, document.FieldExtractedDob)
	}
	if m.FieldCleared(document.FieldExtractedGpa) {
		fields = append(fields, document.FieldExtractedGpa)
	}
	if m.FieldCleared(document.FieldExtractedIncome) {
		fields = append(fields, document.FieldExtractedIncome)
	}
	if m.FieldCleared(document.FieldExtractedLoanAmount) {
		fields = append(fields, document.FieldExtractedLoanAmount)
	}
	if m.FieldCleared(document.FieldExtractedAdmissionYear) {
		fields = append(fields, document.FieldExtractedAdmissionYear)
	}
	if m.FieldCleared(document.FieldParsedJSON) {
		fields = append(fields, document.FieldParsedJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldExtractedName:
		m.ClearExtractedName()
		return nil
	case document.FieldExtractedCourse:
		m.ClearExtractedCourse()
		return nil
	case document.FieldExtractedCollege:
		m.ClearExtractedCollege()
		return nil
	case document.FieldExtractedUsn:
		m.ClearExtractedUsn()
		return nil
	case document.FieldExtractedDob:
		m.ClearExtractedDob()
		return nil
	case document.FieldExtractedGpa:
		m.ClearExtractedGpa()
		return nil
	case document.FieldExtractedIncome:
		m.ClearExtractedIncome()
		return nil
	case document.FieldExtractedLoanAmount:
		m.ClearExtractedLoanAmount()
		return nil
	case document.FieldExtractedAdmissionYear:
		m.ClearExtractedAdmissionYear()
		return nil
	case document.FieldParsedJSON:
		m.ClearParsedJSON()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldEmail:
		m.ResetEmail()
		return nil
	case document.FieldUploadTime:
		m.ResetUploadTime()
		return nil
	case document.FieldSourceFiles:
		m.ResetSourceFiles()
		return nil
	case document.FieldExtractedName:
		m.ResetExtractedName()
		return nil
	case document.FieldExtractedCourse:
		m.ResetExtractedCourse()
		return nil
	case document.FieldExtractedCollege:
		m.ResetExtractedCollege()
		return nil
	case document.FieldExtractedUsn:
		m.ResetExtractedUsn()
		return nil
	case document.FieldExtractedDob:
		m.ResetExtractedDob()
		return nil
	case document.FieldExtractedGpa:
		m.ResetExtractedGpa()
		return nil
	case document.FieldExtractedIncome:
		m.ResetExtractedIncome()
		return nil
	case document.FieldExtractedLoanAmount:
		m.ResetExtractedLoanAmount()
		return nil
	case document.FieldExtractedAdmissionYear:
		m.ResetExtractedAdmissionYear()
		return nil
	case document.FieldRawText:
		m.ResetRawText()
		return nil
	case document.FieldParsedJSON:
		m.ResetParsedJSON()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Document edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                Op
	typ               string
	id                *int
	email             *string
	password_hash     *string
	full_name         *string
	phone             *string
	created_at        *time.Time
	profile_completed *bool
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*User, error)
	predicates        []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetFullName sets the "full_name" field.
func (m *UserMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *UserMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ClearFullName clears the value of the "full_name" field.
func (m *UserMutation) ClearFullName() {
	m.full_name = nil
	m.clearedFields[user.FieldFullName] = struct{}{}
}

// FullNameCleared returns if the "full_name" field was cleared in this mutation.
func (m *UserMutation) FullNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFullName]
	return ok
}

// ResetFullName resets all changes to the "full_name" field.
func (m *UserMutation) ResetFullName() {
	m.full_name = nil
	delete(m.clearedFields, user.FieldFullName)
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProfileCompleted sets the "profile_completed" field.
func (m *UserMutation) SetProfileCompleted(b bool) {
	m.profile_completed = &b
}

// ProfileCompleted returns the value of the "profile_completed" field in the mutation.
func (m *UserMutation) ProfileCompleted() (r bool, exists bool) {
	v := m.profile_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileCompleted returns the old "profile_completed" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldProfileCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileCompleted: %w", err)
	}
	return oldValue.ProfileCompleted, nil
}

// ResetProfileCompleted resets all changes to the "profile_completed" field.
func (m *UserMutation) ResetProfileCompleted() {
	m.profile_completed = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.full_name != nil {
		fields = append(fields, user.FieldFullName)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.profile_completed != nil {
		fields = append(fields, user.FieldProfileCompleted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldFullName:
		return m.FullName()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldProfileCompleted:
		return m.ProfileCompleted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldFullName:
		return m.OldFullName(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldProfileCompleted:
		return m.OldProfileCompleted(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldProfileCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldFullName) {
		fields = append(fields, user.FieldFullName)
	}
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldFullName:
		m.ClearFullName()
		return nil
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldFullName:
		m.ResetFullName()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldProfileCompleted:
		m.ResetProfileCompleted()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
