package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"trucki/internal/models"
)

// In-memory store implementations. They back the service and handler tests
// and honor the same sentinel-error contract as the gorm stores, including
// ErrDuplicate on unique-column collisions.

type MemoryDriverStore struct {
	mu      sync.RWMutex
	nextID  uint
	drivers map[uint]models.Driver
	trucks  *MemoryTruckStore
}

// NewMemoryDriverStore returns an empty driver store. trucks may be nil when
// truck eager-loading is not needed.
func NewMemoryDriverStore(trucks *MemoryTruckStore) *MemoryDriverStore {
	return &MemoryDriverStore{nextID: 1, drivers: make(map[uint]models.Driver), trucks: trucks}
}

func (s *MemoryDriverStore) Create(ctx context.Context, driver *models.Driver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Uniqueness is scoped to active drivers, mirroring the partial unique
	// indexes: a deactivated driver's email and phone are free to reuse.
	for _, d := range s.drivers {
		if !d.IsActive {
			continue
		}
		if d.EmailAddress == driver.EmailAddress || d.Phone == driver.Phone {
			return ErrDuplicate
		}
	}
	driver.ID = s.nextID
	s.nextID++
	now := time.Now()
	driver.CreatedAt = now
	driver.UpdatedAt = now
	s.drivers[driver.ID] = *driver
	return nil
}

func (s *MemoryDriverStore) FindByID(ctx context.Context, id uint) (*models.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drivers[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.attachTruck(&d)
	return &d, nil
}

func (s *MemoryDriverStore) FindByUserID(ctx context.Context, userID uint) (*models.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.drivers {
		if d.UserID == userID {
			s.attachTruck(&d)
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryDriverStore) FindActiveByEmailOrPhone(ctx context.Context, email, phone string) (*models.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.sortedIDs() {
		d := s.drivers[id]
		if !d.IsActive {
			continue
		}
		if d.EmailAddress == email || d.Phone == phone {
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryDriverStore) List(ctx context.Context) ([]models.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Driver, 0, len(s.drivers))
	for _, id := range s.sortedIDs() {
		out = append(out, s.drivers[id])
	}
	return out, nil
}

func (s *MemoryDriverStore) SearchByName(ctx context.Context, term string) ([]models.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(term)
	var out []models.Driver
	for _, id := range s.sortedIDs() {
		d := s.drivers[id]
		if strings.Contains(strings.ToLower(d.Name), needle) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *MemoryDriverStore) Update(ctx context.Context, driver *models.Driver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drivers[driver.ID]; !ok {
		return ErrNotFound
	}
	driver.UpdatedAt = time.Now()
	stored := *driver
	stored.Truck = nil
	s.drivers[driver.ID] = stored
	return nil
}

func (s *MemoryDriverStore) attachTruck(d *models.Driver) {
	if d.TruckID == nil || s.trucks == nil {
		return
	}
	if t, ok := s.trucks.get(*d.TruckID); ok {
		d.Truck = &t
	}
}

func (s *MemoryDriverStore) sortedIDs() []uint {
	ids := make([]uint, 0, len(s.drivers))
	for id := range s.drivers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type MemoryManagerStore struct {
	mu       sync.RWMutex
	nextID   uint
	managers map[uint]models.Manager
}

func NewMemoryManagerStore() *MemoryManagerStore {
	return &MemoryManagerStore{nextID: 1, managers: make(map[uint]models.Manager)}
}

func (s *MemoryManagerStore) Create(ctx context.Context, manager *models.Manager) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.managers {
		if m.EmailAddress == manager.EmailAddress {
			return ErrDuplicate
		}
	}
	manager.ID = s.nextID
	s.nextID++
	now := time.Now()
	manager.CreatedAt = now
	manager.UpdatedAt = now
	s.managers[manager.ID] = *manager
	return nil
}

func (s *MemoryManagerStore) FindByID(ctx context.Context, id uint) (*models.Manager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.managers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *MemoryManagerStore) List(ctx context.Context) ([]models.Manager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Manager, 0, len(s.managers))
	for _, id := range s.sortedIDs() {
		out = append(out, s.managers[id])
	}
	return out, nil
}

func (s *MemoryManagerStore) SearchByName(ctx context.Context, term string) ([]models.Manager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(term)
	var out []models.Manager
	for _, id := range s.sortedIDs() {
		m := s.managers[id]
		if strings.Contains(strings.ToLower(m.Name), needle) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MemoryManagerStore) Update(ctx context.Context, manager *models.Manager) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.managers[manager.ID]; !ok {
		return ErrNotFound
	}
	manager.UpdatedAt = time.Now()
	s.managers[manager.ID] = *manager
	return nil
}

func (s *MemoryManagerStore) ReplaceCompanies(ctx context.Context, manager *models.Manager, companies []models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.managers[manager.ID]
	if !ok {
		return ErrNotFound
	}
	m.Companies = companies
	manager.Companies = companies
	s.managers[manager.ID] = m
	return nil
}

func (s *MemoryManagerStore) sortedIDs() []uint {
	ids := make([]uint, 0, len(s.managers))
	for id := range s.managers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type MemoryTruckOwnerStore struct {
	mu     sync.RWMutex
	nextID uint
	owners map[uint]models.TruckOwner
	trucks *MemoryTruckStore
}

func NewMemoryTruckOwnerStore(trucks *MemoryTruckStore) *MemoryTruckOwnerStore {
	return &MemoryTruckOwnerStore{nextID: 1, owners: make(map[uint]models.TruckOwner), trucks: trucks}
}

func (s *MemoryTruckOwnerStore) Create(ctx context.Context, owner *models.TruckOwner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner.ID = s.nextID
	owner.BankDetails.ID = s.nextID
	owner.BankDetailsID = owner.BankDetails.ID
	s.nextID++
	now := time.Now()
	owner.CreatedAt = now
	owner.UpdatedAt = now
	s.owners[owner.ID] = *owner
	return nil
}

func (s *MemoryTruckOwnerStore) FindByID(ctx context.Context, id uint) (*models.TruckOwner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.owners[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.trucks != nil {
		o.Trucks = s.trucks.listByOwner(o.ID)
	}
	return &o, nil
}

func (s *MemoryTruckOwnerStore) List(ctx context.Context) ([]models.TruckOwner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TruckOwner, 0, len(s.owners))
	for _, id := range s.sortedIDs() {
		out = append(out, s.owners[id])
	}
	return out, nil
}

func (s *MemoryTruckOwnerStore) SearchByName(ctx context.Context, term string) ([]models.TruckOwner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(term)
	var out []models.TruckOwner
	for _, id := range s.sortedIDs() {
		o := s.owners[id]
		if strings.Contains(strings.ToLower(o.Name), needle) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *MemoryTruckOwnerStore) Update(ctx context.Context, owner *models.TruckOwner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owners[owner.ID]; !ok {
		return ErrNotFound
	}
	owner.UpdatedAt = time.Now()
	stored := *owner
	stored.Trucks = nil
	s.owners[owner.ID] = stored
	return nil
}

func (s *MemoryTruckOwnerStore) Delete(ctx context.Context, owner *models.TruckOwner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owners[owner.ID]; !ok {
		return ErrNotFound
	}
	delete(s.owners, owner.ID)
	return nil
}

func (s *MemoryTruckOwnerStore) sortedIDs() []uint {
	ids := make([]uint, 0, len(s.owners))
	for id := range s.owners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type MemoryUserStore struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{nextID: 1, users: make(map[uint]models.User)}
}

func (s *MemoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrDuplicate
		}
	}
	user.ID = s.nextID
	s.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

type MemoryCompanyStore struct {
	mu        sync.RWMutex
	nextID    uint
	companies map[uint]models.Company
}

func NewMemoryCompanyStore() *MemoryCompanyStore {
	return &MemoryCompanyStore{nextID: 1, companies: make(map[uint]models.Company)}
}

func (s *MemoryCompanyStore) Create(ctx context.Context, company *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	company.ID = s.nextID
	s.nextID++
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now
	s.companies[company.ID] = *company
	return nil
}

func (s *MemoryCompanyStore) FindByIDs(ctx context.Context, ids []uint) ([]models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Company
	for _, id := range ids {
		if c, ok := s.companies[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemoryCompanyStore) List(ctx context.Context) ([]models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uint, 0, len(s.companies))
	for id := range s.companies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]models.Company, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.companies[id])
	}
	return out, nil
}

type MemoryTruckStore struct {
	mu     sync.RWMutex
	nextID uint
	trucks map[uint]models.Truck
}

func NewMemoryTruckStore() *MemoryTruckStore {
	return &MemoryTruckStore{nextID: 1, trucks: make(map[uint]models.Truck)}
}

func (s *MemoryTruckStore) Create(ctx context.Context, truck *models.Truck) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trucks {
		if t.PlateNumber == truck.PlateNumber {
			return ErrDuplicate
		}
	}
	truck.ID = s.nextID
	s.nextID++
	now := time.Now()
	truck.CreatedAt = now
	truck.UpdatedAt = now
	s.trucks[truck.ID] = *truck
	return nil
}

func (s *MemoryTruckStore) List(ctx context.Context) ([]models.Truck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uint, 0, len(s.trucks))
	for id := range s.trucks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]models.Truck, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.trucks[id])
	}
	return out, nil
}

func (s *MemoryTruckStore) get(id uint) (models.Truck, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trucks[id]
	return t, ok
}

func (s *MemoryTruckStore) listByOwner(ownerID uint) []models.Truck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Truck
	for _, t := range s.trucks {
		if t.TruckOwnerID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
