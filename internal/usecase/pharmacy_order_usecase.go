package usecase

import (
	"context"
	"time"

	"medecos/internal/authz"
	"medecos/internal/converter"
	"medecos/internal/delivery/dto"
	"medecos/internal/domain/entity"
	"medecos/internal/domain/repository"
	"medecos/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PharmacyOrderUsecase interface {
	Create(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, req *dto.CreatePharmacyOrderRequest) (*dto.PharmacyOrderResponse, error)
	List(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role) ([]dto.PharmacyOrderResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PharmacyOrderResponse, error)
	Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdatePharmacyOrderRequest) (*dto.PharmacyOrderResponse, error)
}

type pharmacyOrderUsecase struct {
	log       *logrus.Logger
	engine    *authz.Engine
	resolver  *SubjectResolver
	orderRepo repository.PharmacyOrderRepository
	audit     service.AuditService
}

func NewPharmacyOrderUsecase(
	log *logrus.Logger,
	engine *authz.Engine,
	resolver *SubjectResolver,
	orderRepo repository.PharmacyOrderRepository,
	audit service.AuditService,
) PharmacyOrderUsecase {
	return &pharmacyOrderUsecase{
		log:       log,
		engine:    engine,
		resolver:  resolver,
		orderRepo: orderRepo,
		audit:     audit,
	}
}

func (u *pharmacyOrderUsecase) Create(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, req *dto.CreatePharmacyOrderRequest) (*dto.PharmacyOrderResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourcePharmacyOrder, authz.ActionCreate); err != nil {
		return nil, err
	}

	sub, err := u.resolver.Resolve(ctx, callerUserID, callerRole, authz.ResourcePharmacyOrder)
	if err != nil {
		return nil, err
	}

	patientID, err := u.engine.SelfAssign(sub, authz.ResourcePharmacyOrder, req.Patient)
	if err != nil {
		return nil, err
	}

	deliveryType := req.DeliveryType
	if deliveryType == "" {
		deliveryType = entity.DeliveryTypePickup
	}

	order := &entity.PharmacyOrder{
		PatientID:       patientID,
		PharmacistID:    req.Pharmacist,
		PrescriptionID:  req.Prescription,
		Medications:     req.Medications,
		TotalAmount:     req.TotalAmount,
		Status:          entity.PharmacyOrderStatusPending,
		DeliveryType:    deliveryType,
		DeliveryAddress: req.DeliveryAddress,
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		u.log.Warnf("Failed to create pharmacy order: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, &callerUserID, entity.AuditActionPharmacyOrderCreate, "pharmacy_order", order.ID.String(), order)

	expanded, err := u.orderRepo.FindByIDExpanded(ctx, order.ID)
	if err != nil || expanded == nil {
		return converter.PharmacyOrderToResponse(order), nil
	}
	return converter.PharmacyOrderToResponse(expanded), nil
}

func (u *pharmacyOrderUsecase) List(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role) ([]dto.PharmacyOrderResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourcePharmacyOrder, authz.ActionList); err != nil {
		return nil, err
	}

	sub, err := u.resolver.Resolve(ctx, callerUserID, callerRole, authz.ResourcePharmacyOrder)
	if err != nil {
		return nil, err
	}

	orders, err := u.orderRepo.FindAll(ctx, u.engine.ListFilter(sub, authz.ResourcePharmacyOrder))
	if err != nil {
		u.log.Warnf("Failed to list pharmacy orders: %+v", err)
		return nil, err
	}

	return converter.PharmacyOrdersToResponses(orders), nil
}

func (u *pharmacyOrderUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PharmacyOrderResponse, error) {
	order, err := u.orderRepo.FindByIDExpanded(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy order: %+v", err)
		return nil, err
	}
	if order == nil {
		return nil, ErrPharmacyOrderNotFound
	}

	return converter.PharmacyOrderToResponse(order), nil
}

func (u *pharmacyOrderUsecase) Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdatePharmacyOrderRequest) (*dto.PharmacyOrderResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourcePharmacyOrder, authz.ActionUpdate); err != nil {
		return nil, err
	}

	sub, err := u.resolver.Resolve(ctx, callerUserID, callerRole, authz.ResourcePharmacyOrder)
	if err != nil {
		return nil, err
	}

	order, err := u.orderRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy order: %+v", err)
		return nil, err
	}
	if order == nil {
		return nil, ErrPharmacyOrderNotFound
	}

	owners := authz.OwnerRefs{Pharmacist: &order.PharmacistID}
	if err := u.engine.CheckOwnership(sub, authz.ResourcePharmacyOrder, authz.ActionUpdate, owners); err != nil {
		return nil, err
	}

	old := *order

	if req.Medications != nil {
		order.Medications = *req.Medications
	}
	if req.TotalAmount != nil {
		order.TotalAmount = *req.TotalAmount
	}
	if req.DeliveryType != nil {
		order.DeliveryType = *req.DeliveryType
	}
	if req.DeliveryAddress != nil {
		order.DeliveryAddress = *req.DeliveryAddress
	}
	if req.Status != nil {
		order.Status = entity.PharmacyOrderStatus(*req.Status)
		if order.Status == entity.PharmacyOrderStatusCompleted && order.CompletedDate == nil {
			now := time.Now()
			order.CompletedDate = &now
		}
	}

	if err := u.orderRepo.Update(ctx, order); err != nil {
		u.log.Warnf("Failed to update pharmacy order: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, &callerUserID, entity.AuditActionPharmacyOrderUpdate, "pharmacy_order", order.ID.String(), old, order)

	expanded, err := u.orderRepo.FindByIDExpanded(ctx, order.ID)
	if err != nil || expanded == nil {
		return converter.PharmacyOrderToResponse(order), nil
	}
	return converter.PharmacyOrderToResponse(expanded), nil
}
