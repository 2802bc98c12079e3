package service

import (
	"context"

	"medecos/internal/domain/entity"
	"medecos/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuditService writes audit-trail entries alongside the mutations they
// describe. Failures are logged but never fail the calling request.
type AuditService interface {
	LogCreate(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, newValue interface{})
	LogUpdate(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{})
	LogDelete(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, oldValue interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogCreate(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, newValue interface{}) {
	s.write(ctx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

func (s *auditService) LogUpdate(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) {
	s.write(ctx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

func (s *auditService) LogDelete(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) {
	s.write(ctx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

func (s *auditService) write(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}
	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}
