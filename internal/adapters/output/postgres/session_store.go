package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meal-order-client/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Compile-time check to ensure SessionStore implements the output port
var _ output.SessionStore = (*SessionStore)(nil)

// ClientState is one persisted session key
type ClientState struct {
	Namespace string `gorm:"primaryKey;size:64"`
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName func
func (ClientState) TableName() string {
	return "client_states"
}

// SessionStore struct - Secondary/Driven adapter for PostgreSQL
type SessionStore struct {
	dbGorm    *gorm.DB
	namespace string
}

// NewSessionStore func - Creates new PostgreSQL session store and migrates its table
func NewSessionStore(dbGorm *gorm.DB, namespace string) (*SessionStore, error) {
	if dbGorm == nil {
		return nil, errors.New("session: postgres connection not configured")
	}
	if namespace == "" {
		namespace = "default"
	}

	logrus.Info("Migrate database ...")
	if err := dbGorm.AutoMigrate(&ClientState{}); err != nil {
		logrus.Errorln(err)
		return nil, fmt.Errorf("session: failed to migrate: %w", err)
	}

	return &SessionStore{
		dbGorm:    dbGorm,
		namespace: namespace,
	}, nil
}

// Get func - Reads one key of the namespace
func (p *SessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	var state ClientState
	err := p.dbGorm.WithContext(ctx).
		Where("namespace = ? AND key = ?", p.namespace, key).
		First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		logrus.Errorln(err)
		return "", false, fmt.Errorf("session: failed to read %s: %w", key, err)
	}
	return state.Value, true, nil
}

// Set func - Upserts one key of the namespace
func (p *SessionStore) Set(ctx context.Context, key, value string) error {
	state := ClientState{
		Namespace: p.namespace,
		Key:       key,
		Value:     value,
	}
	err := p.dbGorm.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&state).Error
	if err != nil {
		logrus.Errorln(err)
		return fmt.Errorf("session: failed to write %s: %w", key, err)
	}
	return nil
}

// Clear func - Deletes every key of the namespace
func (p *SessionStore) Clear(ctx context.Context) error {
	err := p.dbGorm.WithContext(ctx).
		Where("namespace = ?", p.namespace).
		Delete(&ClientState{}).Error
	if err != nil {
		logrus.Errorln(err)
		return fmt.Errorf("session: failed to clear: %w", err)
	}
	return nil
}
