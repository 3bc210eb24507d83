package usecase

import (
	"filling-station/internal/data/repository"
	"filling-station/pkg/sms"
	"filling-station/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Registration RegistrationService
	Order        OrderService
}

func NewService(repo *repository.Repository, sender sms.Sender, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Registration: NewRegistrationService(repo, sender, config, log),
		Order:        NewOrderService(repo, config, log),
	}
}
