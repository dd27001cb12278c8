package session

import (
	"errors"
	"testing"
	"time"

	"driveacademy/models"
	"driveacademy/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	sessions map[string]*models.Session
}

func newFakeSessionRepo(sessions ...models.Session) *fakeSessionRepo {
	repo := &fakeSessionRepo{sessions: map[string]*models.Session{}}
	for i := range sessions {
		s := sessions[i]
		repo.sessions[s.ID] = &s
	}
	return repo
}

func (r *fakeSessionRepo) GetByID(id string) (*models.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "session"}
	}
	dup := *s
	return &dup, nil
}

func (r *fakeSessionRepo) GetAll() ([]models.Session, error) {
	out := make([]models.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSessionRepo) GetBetween(from, to time.Time) ([]models.Session, error) {
	var out []models.Session
	for _, s := range r.sessions {
		if !s.StartTime.Before(from) && s.StartTime.Before(to) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) GetAvailable(after time.Time) ([]models.Session, error) {
	var out []models.Session
	for _, s := range r.sessions {
		if s.IsAvailable && s.Status == models.SessionScheduled && s.StartTime.After(after) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) GetByCustomer(customerID string) ([]models.Session, error) {
	var out []models.Session
	for _, s := range r.sessions {
		if s.IsEnrolled(customerID) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Create(session *models.Session) error {
	dup := *session
	r.sessions[session.ID] = &dup
	return nil
}

func (r *fakeSessionRepo) UpdateFields(id string, fields map[string]any) error {
	s, ok := r.sessions[id]
	if !ok {
		return utils.NotFoundError{Resource: "session"}
	}
	for k, v := range fields {
		switch k {
		case "title":
			s.Title = v.(string)
		case "type":
			s.Type = v.(string)
		case "startTime":
			s.StartTime = v.(time.Time)
		case "endTime":
			s.EndTime = v.(time.Time)
		case "status":
			s.Status = v.(string)
		case "licenseType":
			s.LicenseType = v.(string)
		case "notes":
			s.Notes = v.(string)
		case "maxCapacity":
			s.MaxCapacity = v.(int)
		case "isAvailable":
			s.IsAvailable = v.(bool)
		case "updatedAt":
			s.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (r *fakeSessionRepo) Delete(id string) error {
	if _, ok := r.sessions[id]; !ok {
		return utils.NotFoundError{Resource: "session"}
	}
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) AddCustomer(sessionID, customerID string) (bool, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return false, utils.NotFoundError{Resource: "session"}
	}
	if !s.IsAvailable || s.IsEnrolled(customerID) || !s.HasCapacity() {
		return false, nil
	}
	s.EnrolledCustomerIDs = append(s.EnrolledCustomerIDs, customerID)
	return true, nil
}

func (r *fakeSessionRepo) RemoveCustomer(sessionID, customerID string) (bool, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return false, utils.NotFoundError{Resource: "session"}
	}
	for i, id := range s.EnrolledCustomerIDs {
		if id == customerID {
			s.EnrolledCustomerIDs = append(s.EnrolledCustomerIDs[:i], s.EnrolledCustomerIDs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeCustomerRepo struct {
	customers map[string]*models.Customer
}

func newFakeCustomerRepo(customers ...models.Customer) *fakeCustomerRepo {
	repo := &fakeCustomerRepo{customers: map[string]*models.Customer{}}
	for i := range customers {
		c := customers[i]
		repo.customers[c.ID] = &c
	}
	return repo
}

func (r *fakeCustomerRepo) GetByID(id string) (*models.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "customer"}
	}
	dup := *c
	return &dup, nil
}

func (r *fakeCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			dup := *c
			return &dup, nil
		}
	}
	return nil, utils.NotFoundError{Resource: "customer"}
}

func (r *fakeCustomerRepo) GetAll() ([]models.Customer, error) {
	out := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) GetByIDs(ids []string) ([]models.Customer, error) {
	var out []models.Customer
	for _, id := range ids {
		if c, ok := r.customers[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Create(customer *models.Customer) error {
	dup := *customer
	r.customers[customer.ID] = &dup
	return nil
}

func (r *fakeCustomerRepo) UpdateFields(id string, fields map[string]any) error {
	if _, ok := r.customers[id]; !ok {
		return utils.NotFoundError{Resource: "customer"}
	}
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) CountRegisteredBetween(from, to time.Time) (int64, error) {
	var n int64
	for _, c := range r.customers {
		if !c.RegisteredAt.Before(from) && c.RegisteredAt.Before(to) {
			n++
		}
	}
	return n, nil
}

func newTestService(sessions ...models.Session) (*DefaultSessionService, *fakeSessionRepo) {
	repo := newFakeSessionRepo(sessions...)
	return &DefaultSessionService{
		Repo:         repo,
		CustomerRepo: newFakeCustomerRepo(models.Customer{ID: "cust-1", FirstName: "Amal", LastName: "Perera", Email: "amal@example.com"}),
		Slots:        testValidator(),
	}, repo
}

func TestCreateSessionPersistsValidSlot(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.CreateSession(models.SessionCreate{
		Title:       "Beginner practical",
		Type:        models.SessionPractical,
		StartTime:   at(10, 0, 0),
		EndTime:     at(11, 0, 0),
		LicenseType: models.LicenseLightVehicle,
		MaxCapacity: 4,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, models.SessionScheduled, resp.Status)
	assert.True(t, resp.IsAvailable)
	assert.Equal(t, 0, resp.CurrentEnrollment)

	stored, err := repo.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beginner practical", stored.Title)
}

func TestCreateSessionRejectsConflictingSlot(t *testing.T) {
	svc, _ := newTestService(existingSession("s1", at(10, 0, 0), at(11, 0, 0)))

	_, err := svc.CreateSession(models.SessionCreate{
		Title:       "Clashing",
		Type:        models.SessionPractical,
		StartTime:   at(10, 30, 0),
		EndTime:     at(11, 30, 0),
		LicenseType: models.LicenseLightVehicle,
		MaxCapacity: 4,
	})
	var ve utils.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Message, "overlaps")
}

func TestCreateSessionIgnoresCancelledSessions(t *testing.T) {
	cancelled := existingSession("s1", at(10, 0, 0), at(11, 0, 0))
	cancelled.Status = models.SessionCancelled
	svc, _ := newTestService(cancelled)

	_, err := svc.CreateSession(models.SessionCreate{
		Title:       "Takes over the cancelled slot",
		Type:        models.SessionTheory,
		StartTime:   at(10, 0, 0),
		EndTime:     at(11, 0, 0),
		LicenseType: models.LicenseMotorcycle,
		MaxCapacity: 10,
	})
	assert.NoError(t, err)
}

func TestUpdateSessionRevalidatesMovedWindow(t *testing.T) {
	s1 := existingSession("s1", at(10, 0, 0), at(11, 0, 0))
	s2 := existingSession("s2", at(14, 0, 0), at(15, 0, 0))
	svc, _ := newTestService(s1, s2)

	// Extending s1 inside its own slot is allowed.
	newEnd := at(11, 30, 0)
	resp, err := svc.UpdateSession("s1", models.SessionUpdate{EndTime: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, newEnd, resp.EndTime)

	// Moving s1 onto s2 is refused.
	newStart := at(14, 30, 0)
	newEnd = at(15, 30, 0)
	_, err = svc.UpdateSession("s1", models.SessionUpdate{StartTime: &newStart, EndTime: &newEnd})
	var ve utils.ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestUpdateSessionRejectsCapacityBelowEnrollment(t *testing.T) {
	s := existingSession("s1", at(10, 0, 0), at(11, 0, 0))
	s.MaxCapacity = 5
	s.EnrolledCustomerIDs = []string{"a", "b", "c"}
	svc, _ := newTestService(s)

	two := 2
	_, err := svc.UpdateSession("s1", models.SessionUpdate{MaxCapacity: &two})
	var ve utils.ValidationError
	require.True(t, errors.As(err, &ve))

	four := 4
	_, err = svc.UpdateSession("s1", models.SessionUpdate{MaxCapacity: &four})
	assert.NoError(t, err)
}

func TestEnrollHappyPath(t *testing.T) {
	s := existingSession("s1", at(10, 0, 0), at(11, 0, 0))
	s.IsAvailable = true
	s.MaxCapacity = 2
	svc, repo := newTestService(s)

	result, err := svc.Enroll("cust-1", "s1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Successfully enrolled in session", result.Message)

	stored, _ := repo.GetByID("s1")
	assert.True(t, stored.IsEnrolled("cust-1"))
}

func TestEnrollRejectsDuplicateAndFullSessions(t *testing.T) {
	s := existingSession("s1", at(10, 0, 0), at(11, 0, 0))
	s.IsAvailable = true
	s.MaxCapacity = 1
	s.EnrolledCustomerIDs = []string{"cust-1"}
	svc, _ := newTestService(s)

	result, err := svc.Enroll("cust-1", "s1")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "You are already enrolled in this session", result.Message)

	// A different customer finds the session full.
	svc.CustomerRepo.(*fakeCustomerRepo).customers["cust-2"] = &models.Customer{ID: "cust-2"}
	result, err = svc.Enroll("cust-2", "s1")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Session is already at full capacity", result.Message)
}

func TestEnrollRejectsUnavailableSession(t *testing.T) {
	s := existingSession("s1", at(10, 0, 0), at(11, 0, 0))
	s.IsAvailable = false
	s.MaxCapacity = 4
	svc, _ := newTestService(s)

	result, err := svc.Enroll("cust-1", "s1")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "This session is not available for enrollment", result.Message)
}

func TestCancelEnrollment(t *testing.T) {
	s := existingSession("s1", at(10, 0, 0), at(11, 0, 0))
	s.IsAvailable = true
	s.MaxCapacity = 2
	s.EnrolledCustomerIDs = []string{"cust-1"}
	svc, repo := newTestService(s)

	result, err := svc.CancelEnrollment("cust-1", "s1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Successfully canceled enrollment", result.Message)

	stored, _ := repo.GetByID("s1")
	assert.False(t, stored.IsEnrolled("cust-1"))

	// Cancelling again reports the missing enrollment.
	result, err = svc.CancelEnrollment("cust-1", "s1")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "You are not enrolled in this session", result.Message)
}

func TestCancelEnrollmentNeverEnrolled(t *testing.T) {
	s := existingSession("s1", at(10, 0, 0), at(11, 0, 0))
	s.IsAvailable = true
	s.MaxCapacity = 2
	s.EnrolledCustomerIDs = []string{"cust-2"}
	svc, repo := newTestService(s)

	// cust-1 was never enrolled; the session document still exists and gets
	// touched by other writes, but the cancel must not report success.
	result, err := svc.CancelEnrollment("cust-1", "s1")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "You are not enrolled in this session", result.Message)

	stored, _ := repo.GetByID("s1")
	assert.True(t, stored.IsEnrolled("cust-2"))
}

func TestGetSessionByIDJoinsEnrolledCustomers(t *testing.T) {
	s := existingSession("s1", at(10, 0, 0), at(11, 0, 0))
	s.MaxCapacity = 4
	s.EnrolledCustomerIDs = []string{"cust-1"}
	svc, _ := newTestService(s)

	resp, err := svc.GetSessionByID("s1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CurrentEnrollment)
	require.Len(t, resp.EnrolledCustomers, 1)
	assert.Equal(t, "Amal", resp.EnrolledCustomers[0].FirstName)
	assert.Equal(t, "amal@example.com", resp.EnrolledCustomers[0].Email)
}
