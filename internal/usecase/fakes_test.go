package usecase

import (
	"context"
	"io"
	"sync"
	"time"

	"medexus-backend/internal/delivery/http/middleware"
	"medexus-backend/internal/domain/entity"
	"medexus-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// authContext simulates what the authentication middleware injects for a
// request made by the given user.
func authContext(userID uuid.UUID, role string) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.RoleKey, role)
	ctx = context.WithValue(ctx, middleware.TokenIDKey, uuid.New().String())
	return ctx
}

// fakeUserRepo is an in-memory UserRepository. Create fails with
// gorm.ErrDuplicatedKey on a duplicate email, matching the translated
// database error the usecase classifies.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

type interestKey struct {
	requestID uuid.UUID
	doctorID  uuid.UUID
}

// fakeInterestRepo enforces the composite (request, doctor) uniqueness the
// real table's unique index provides.
type fakeInterestRepo struct {
	mu        sync.Mutex
	interests map[interestKey]*entity.Interest
}

func newFakeInterestRepo() *fakeInterestRepo {
	return &fakeInterestRepo{interests: make(map[interestKey]*entity.Interest)}
}

func (r *fakeInterestRepo) Create(ctx context.Context, interest *entity.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := interestKey{requestID: interest.RequestID, doctorID: interest.DoctorID}
	if _, exists := r.interests[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	if interest.ID == uuid.Nil {
		interest.ID = uuid.New()
	}
	interest.CreatedAt = time.Now()
	r.interests[key] = interest
	return nil
}

func (r *fakeInterestRepo) FindByRequestAndDoctor(ctx context.Context, requestID, doctorID uuid.UUID) (*entity.Interest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	interest, ok := r.interests[interestKey{requestID: requestID, doctorID: doctorID}]
	if !ok {
		return nil, nil
	}
	return interest, nil
}

func (r *fakeInterestRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Interest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Interest
	for key, interest := range r.interests {
		if key.doctorID == doctorID {
			result = append(result, *interest)
		}
	}
	return result, nil
}

func (r *fakeInterestRepo) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]entity.Interest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Interest
	for key, interest := range r.interests {
		if key.requestID == requestID {
			result = append(result, *interest)
		}
	}
	return result, nil
}

func (r *fakeInterestRepo) DeleteByRequestAndDoctor(ctx context.Context, requestID, doctorID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := interestKey{requestID: requestID, doctorID: doctorID}
	if _, ok := r.interests[key]; !ok {
		return 0, nil
	}
	delete(r.interests, key)
	return 1, nil
}

func (r *fakeInterestRepo) deleteByRequestID(requestID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.interests {
		if key.requestID == requestID {
			delete(r.interests, key)
		}
	}
}

// fakeRequestRepo mirrors the real repository's cascade: deleting a request
// also removes every interest referencing it.
type fakeRequestRepo struct {
	mu           sync.Mutex
	requests     map[uuid.UUID]*entity.SurgeryRequest
	interestRepo *fakeInterestRepo
}

func newFakeRequestRepo(interestRepo *fakeInterestRepo) *fakeRequestRepo {
	return &fakeRequestRepo{
		requests:     make(map[uuid.UUID]*entity.SurgeryRequest),
		interestRepo: interestRepo,
	}
}

func (r *fakeRequestRepo) Create(ctx context.Context, request *entity.SurgeryRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	r.requests[request.ID] = request
	return nil
}

func (r *fakeRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.SurgeryRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	return request, nil
}

func (r *fakeRequestRepo) FindByHospitalID(ctx context.Context, hospitalID uuid.UUID) ([]entity.SurgeryRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.SurgeryRequest
	for _, request := range r.requests {
		if request.HospitalID == hospitalID {
			result = append(result, *request)
		}
	}
	return result, nil
}

func (r *fakeRequestRepo) FindAll(ctx context.Context) ([]entity.SurgeryRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]entity.SurgeryRequest, 0, len(r.requests))
	for _, request := range r.requests {
		result = append(result, *request)
	}
	return result, nil
}

func (r *fakeRequestRepo) Update(ctx context.Context, request *entity.SurgeryRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	request.UpdatedAt = time.Now()
	r.requests[request.ID] = request
	return nil
}

func (r *fakeRequestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	delete(r.requests, id)
	r.mu.Unlock()
	if r.interestRepo != nil {
		r.interestRepo.deleteByRequestID(id)
	}
	return nil
}

// fakeAuditRepo collects audit log writes for inspection.
type fakeAuditRepo struct {
	mu   sync.Mutex
	logs []*entity.AuditLog
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{}
}

func (r *fakeAuditRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeAuditRepo) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	actions := make([]string, 0, len(r.logs))
	for _, log := range r.logs {
		actions = append(actions, log.Action)
	}
	return actions
}

type tokenStoreKey struct {
	userID    uuid.UUID
	tokenID   string
	tokenType jwt.TokenType
}

// fakeTokenStore is an in-memory TokenStore.
type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[tokenStoreKey]struct{}
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[tokenStoreKey]struct{})}
}

func (s *fakeTokenStore) Save(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tokenStoreKey{userID: userID, tokenID: tokenID, tokenType: tokenType}] = struct{}{}
	return nil
}

func (s *fakeTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[tokenStoreKey{userID: userID, tokenID: tokenID, tokenType: tokenType}]
	return ok, nil
}

func (s *fakeTokenStore) Delete(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, tokenStoreKey{userID: userID, tokenID: tokenID, tokenType: tokenType})
	return nil
}

func (s *fakeTokenStore) DeleteByTokenID(ctx context.Context, tokenID string, tokenType jwt.TokenType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.tokens {
		if key.tokenID == tokenID && key.tokenType == tokenType {
			delete(s.tokens, key)
		}
	}
	return nil
}

func (s *fakeTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.tokens {
		if key.userID == userID {
			delete(s.tokens, key)
		}
	}
	return nil
}

func (s *fakeTokenStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}
