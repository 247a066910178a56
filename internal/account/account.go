// Package account holds every user's record and the current session, and
// persists both through a key-value gateway after each change.
package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finsimples/internal/goals"
	"github.com/theirongolddev/finsimples/internal/ledger"
	"github.com/theirongolddev/finsimples/internal/model"
)

// Storage keys.
const (
	UsersKey   = "finsimples_all_users_data"
	CurrentKey = "finsimples_current_user"

	// BackupKey receives a users blob that could not be parsed at all.
	BackupKey = UsersKey + "_unreadable"
)

var (
	ErrUserExists      = errors.New("username already taken")
	ErrUnknownUser     = errors.New("unknown username")
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrSessionInvalid  = errors.New("session user no longer exists; logged out")
	ErrNeedsOnboarding = errors.New("onboarding not completed")
	ErrUnreadable      = errors.New("stored record could not be read")
	ErrOnboarded       = errors.New("onboarding already completed")
)

// Gateway is the persistence the store writes through.
type Gateway interface {
	Load(key string) (string, bool, error)
	Save(key, value string) error
	Remove(key string) error
}

// Store is the single-actor account store. It is not safe for concurrent use.
type Store struct {
	gw      Gateway
	log     *slog.Logger
	users   map[string]model.UserRecord
	current string

	// unreadable keeps records that failed to decode. They are written
	// back unchanged and their usernames stay taken.
	unreadable map[string]json.RawMessage
	version uint64
}

// Open loads all records and the session pointer from gw. A missing blob
// starts an empty store. Records that fail to decode are kept aside and
// persisted untouched; a blob that is not a JSON object is copied to
// BackupKey before the store starts empty.
func Open(gw Gateway, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		gw:         gw,
		log:        logger,
		users:      make(map[string]model.UserRecord),
		unreadable: make(map[string]json.RawMessage),
	}

	raw, ok, err := gw.Load(UsersKey)
	switch {
	case err != nil:
		logger.Warn("failed to load user data", "key", UsersKey, "error", err)
	case ok:
		s.decodeUsers(raw)
	}

	cur, ok, err := gw.Load(CurrentKey)
	if err != nil {
		logger.Warn("failed to load current user", "key", CurrentKey, "error", err)
	} else if ok {
		s.current = cur
	}

	logger.Debug("account store opened", "users", len(s.users), "unreadable", len(s.unreadable), "current", s.current)
	return s
}

func (s *Store) decodeUsers(raw string) {
	var blobs map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &blobs); err != nil {
		s.log.Warn("user data is not readable, backing it up", "key", UsersKey, "backup", BackupKey, "error", err)
		if err := s.gw.Save(BackupKey, raw); err != nil {
			s.log.Warn("failed to back up user data", "key", BackupKey, "error", err)
		}
		return
	}
	for name, blob := range blobs {
		var rec model.UserRecord
		if err := json.Unmarshal(blob, &rec); err != nil {
			s.log.Warn("keeping unreadable user record as is", "user", name, "error", err)
			s.unreadable[name] = blob
			continue
		}
		s.users[name] = rec
	}
}

func (s *Store) encodeUsers() ([]byte, error) {
	if len(s.unreadable) == 0 {
		return json.Marshal(s.users)
	}
	all := make(map[string]any, len(s.users)+len(s.unreadable))
	for name, blob := range s.unreadable {
		all[name] = blob
	}
	for name, rec := range s.users {
		all[name] = rec
	}
	return json.Marshal(all)
}

// Version increases on every change to any record or the session.
func (s *Store) Version() uint64 { return s.version }

// Usernames lists the usernames that can log in, in order.
func (s *Store) Usernames() []string {
	names := make([]string, 0, len(s.users))
	for n := range s.users {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Register creates a record and logs it in. An existing record with the
// same username is left untouched and ErrUserExists returned.
func (s *Store) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return model.Invalid("username", "required")
	}
	_, exists := s.users[username]
	_, kept := s.unreadable[username]
	if exists || kept {
		return ErrUserExists
	}
	s.users[username] = model.NewUserRecord(username, password)
	s.current = username
	s.changed()
	s.log.Info("user registered", "user", username)
	return nil
}

// Login starts a session for username. Only the username's existence is
// checked; password is not compared.
func (s *Store) Login(username, password string) error {
	username = strings.TrimSpace(username)
	if _, kept := s.unreadable[username]; kept {
		return ErrUnreadable
	}
	if _, ok := s.users[username]; !ok {
		return ErrUnknownUser
	}
	s.current = username
	s.changed()
	return nil
}

// Logout ends the session.
func (s *Store) Logout() {
	if s.current == "" {
		return
	}
	s.current = ""
	s.changed()
}

// Current returns the session user and a copy of its record. A session
// pointing at a missing record is terminated.
func (s *Store) Current() (string, model.UserRecord, error) {
	if s.current == "" {
		return "", model.UserRecord{}, ErrNotLoggedIn
	}
	if _, kept := s.unreadable[s.current]; kept {
		return "", model.UserRecord{}, ErrUnreadable
	}
	rec, ok := s.users[s.current]
	if !ok {
		s.log.Warn("session user has no record, logging out", "user", s.current)
		s.current = ""
		s.changed()
		return "", model.UserRecord{}, ErrSessionInvalid
	}
	return s.current, rec, nil
}

// Active is Current for operations that need onboarding done.
func (s *Store) Active() (string, model.UserRecord, error) {
	name, rec, err := s.Current()
	if err != nil {
		return "", model.UserRecord{}, err
	}
	if !rec.HasCompletedOnboarding {
		return name, rec, ErrNeedsOnboarding
	}
	return name, rec, nil
}

// CompleteOnboarding saves the initial settings and sets the onboarding
// flag. The flag is never cleared; a second call returns ErrOnboarded and
// later changes go through UpdateSettings.
func (s *Store) CompleteOnboarding(settings model.UserSettings) error {
	_, rec, err := s.Current()
	if err != nil {
		return err
	}
	if rec.HasCompletedOnboarding {
		return ErrOnboarded
	}
	if err := ValidateSettings(settings); err != nil {
		return err
	}
	return s.update(func(r *model.UserRecord) {
		r.Settings = settings
		r.HasCompletedOnboarding = true
	})
}

// UpdateSettings replaces the settings wholesale.
func (s *Store) UpdateSettings(settings model.UserSettings) error {
	if err := ValidateSettings(settings); err != nil {
		return err
	}
	return s.update(func(r *model.UserRecord) { r.Settings = settings })
}

// ReplaceData overwrites settings, ledger and goals in one write. Every
// entry is validated first; entries without an id get a fresh one. The
// onboarding flag is left as it is.
func (s *Store) ReplaceData(settings model.UserSettings, txs []model.Transaction, gs []model.SavingsGoal) error {
	if err := ValidateSettings(settings); err != nil {
		return err
	}

	ledgerCopy := make([]model.Transaction, len(txs))
	for i, tx := range txs {
		if err := ledger.Validate(tx); err != nil {
			return fmt.Errorf("transaction %d: %w", i+1, err)
		}
		if tx.ID == "" {
			tx.ID = ledger.NewID()
		}
		ledgerCopy[i] = tx
	}

	goalsCopy := make([]model.SavingsGoal, len(gs))
	for i, g := range gs {
		if err := goals.Validate(g); err != nil {
			return fmt.Errorf("goal %d: %w", i+1, err)
		}
		if g.CurrentAmount.IsNegative() {
			return fmt.Errorf("goal %d: %w", i+1, model.Invalid("saved amount", "must not be negative"))
		}
		if g.ID == "" {
			g.ID = goals.NewID()
		}
		goalsCopy[i] = g
	}

	return s.update(func(r *model.UserRecord) {
		r.Settings = settings
		r.Transactions = ledgerCopy
		r.Goals = goalsCopy
	})
}

// AddTransaction validates draft, stores it and returns its new id.
func (s *Store) AddTransaction(draft model.Transaction) (string, error) {
	if err := ledger.Validate(draft); err != nil {
		return "", err
	}
	var id string
	err := s.update(func(r *model.UserRecord) {
		r.Transactions, id = ledger.Add(r.Transactions, draft)
	})
	return id, err
}

// EditTransaction replaces the entry with id. Unknown ids change nothing.
func (s *Store) EditTransaction(id string, draft model.Transaction) error {
	if err := ledger.Validate(draft); err != nil {
		return err
	}
	return s.update(func(r *model.UserRecord) {
		r.Transactions = ledger.Edit(r.Transactions, id, draft)
	})
}

// DeleteTransaction removes the entry with id.
func (s *Store) DeleteTransaction(id string) error {
	return s.update(func(r *model.UserRecord) {
		r.Transactions = ledger.Delete(r.Transactions, id)
	})
}

// AddGoal validates draft, stores it and returns its new id.
func (s *Store) AddGoal(draft model.SavingsGoal) (string, error) {
	if err := goals.Validate(draft); err != nil {
		return "", err
	}
	var id string
	err := s.update(func(r *model.UserRecord) {
		r.Goals, id = goals.Add(r.Goals, draft)
	})
	return id, err
}

// Deposit adds a positive amount to the goal with id.
func (s *Store) Deposit(id string, amount decimal.Decimal) error {
	if err := goals.ValidateDeposit(amount); err != nil {
		return err
	}
	return s.update(func(r *model.UserRecord) {
		r.Goals = goals.Deposit(r.Goals, id, amount)
	})
}

// DeleteGoal removes the goal with id. Confirmation is the caller's job.
func (s *Store) DeleteGoal(id string) error {
	return s.update(func(r *model.UserRecord) {
		r.Goals = goals.Delete(r.Goals, id)
	})
}

// ValidateSettings requires a user name and a non-negative savings goal.
func ValidateSettings(settings model.UserSettings) error {
	if strings.TrimSpace(settings.UserName) == "" {
		return model.Invalid("name", "required")
	}
	if settings.SavingsGoal.IsNegative() {
		return model.Invalid("savings goal", "must not be negative")
	}
	return nil
}

func (s *Store) update(fn func(*model.UserRecord)) error {
	name, rec, err := s.Current()
	if err != nil {
		return err
	}
	fn(&rec)
	s.users[name] = rec
	s.changed()
	return nil
}

// changed bumps the version and writes both keys. Write failures are logged
// and the in-memory state is kept.
func (s *Store) changed() {
	s.version++

	data, err := s.encodeUsers()
	if err != nil {
		s.log.Warn("failed to encode user data", "error", err)
	} else if err := s.gw.Save(UsersKey, string(data)); err != nil {
		s.log.Warn("failed to save user data", "key", UsersKey, "error", err)
	}

	if s.current == "" {
		err = s.gw.Remove(CurrentKey)
	} else {
		err = s.gw.Save(CurrentKey, s.current)
	}
	if err != nil {
		s.log.Warn("failed to save current user", "key", CurrentKey, "error", err)
	}
}
