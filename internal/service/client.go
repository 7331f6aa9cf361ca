package service

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/invoicing-api/internal/apperr"
	"github.com/tuanvumaihuynh/invoicing-api/internal/model"
	"github.com/tuanvumaihuynh/invoicing-api/internal/repository"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/validator"
)

// ClientParams is the writable part of a client.
type ClientParams struct {
	Identificacion string `json:"identificacion" validate:"required,len=10"`
	Nombre         string `json:"nombre" validate:"required,notblank,min=4,max=100"`
	Correo         string `json:"correo" validate:"required,email"`
	Telefono       string `json:"telefono" validate:"required,min=7,max=15"`
}

func (p ClientParams) toModel() model.Client {
	return model.Client{
		Identificacion: p.Identificacion,
		Nombre:         p.Nombre,
		Correo:         p.Correo,
		Telefono:       p.Telefono,
	}
}

type ClientService interface {
	CreateClient(ctx context.Context, params ClientParams) (model.Client, error)
	ListClients(ctx context.Context) ([]model.Client, error)
	GetClient(ctx context.Context, identificacion string) (model.Client, error)
	UpdateClient(ctx context.Context, identificacion string, params ClientParams) (model.Client, error)
	DeleteClient(ctx context.Context, identificacion string) (model.Client, error)
}

type clientService struct {
	validator  validator.Validator
	clientRepo repository.ClientRepository
}

func NewClientService(v validator.Validator, clientRepo repository.ClientRepository) ClientService {
	return &clientService{
		validator:  v,
		clientRepo: clientRepo,
	}
}

func (s *clientService) CreateClient(ctx context.Context, params ClientParams) (model.Client, error) {
	if err := validate(s.validator, params); err != nil {
		return model.Client{}, err
	}

	client, err := s.clientRepo.Create(ctx, params.toModel())
	if err != nil {
		return model.Client{}, storageErr("client repository create", err, apperr.ClientNotFoundErr)
	}

	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]model.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("client repository list: %w", err)
	}

	return clients, nil
}

func (s *clientService) GetClient(ctx context.Context, identificacion string) (model.Client, error) {
	client, err := s.clientRepo.Get(ctx, identificacion)
	if err != nil {
		return model.Client{}, storageErr("client repository get", err, apperr.ClientNotFoundErr)
	}

	return client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, identificacion string, params ClientParams) (model.Client, error) {
	if err := validate(s.validator, params); err != nil {
		return model.Client{}, err
	}

	if params.Identificacion != identificacion {
		return model.Client{}, apperr.ClientIdentificationMismatchErr
	}

	client, err := s.clientRepo.Update(ctx, identificacion, params.toModel())
	if err != nil {
		return model.Client{}, storageErr("client repository update", err, apperr.ClientNotFoundErr)
	}

	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, identificacion string) (model.Client, error) {
	client, err := s.clientRepo.Delete(ctx, identificacion)
	if err != nil {
		return model.Client{}, storageErr("client repository delete", err, apperr.ClientNotFoundErr)
	}

	return client, nil
}
