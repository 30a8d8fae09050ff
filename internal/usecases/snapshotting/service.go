package snapshotting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analyst-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-analyst-api/infrastructure/repository"
	"github.com/vfg2006/ad-analyst-api/internal/config"
	"github.com/vfg2006/ad-analyst-api/internal/domain"
)

// Service captura snapshots da conta de anúncios e da saúde do pixel via Meta
type Service struct {
	cfg                    *config.Config
	metaService            meta.Integrator
	snapshotRepository     repository.SnapshotRepository
	eventsHealthRepository repository.EventsHealthRepository
}

// NewService cria uma nova instância do serviço de snapshots
func NewService(
	cfg *config.Config,
	metaService meta.Integrator,
	snapshotRepo repository.SnapshotRepository,
	eventsHealthRepo repository.EventsHealthRepository,
) Snapshotter {
	return &Service{
		cfg:                    cfg,
		metaService:            metaService,
		snapshotRepository:     snapshotRepo,
		eventsHealthRepository: eventsHealthRepo,
	}
}

// CreateDailySnapshot captura o retrato da conta para a data. Já existindo um
// registro para a data, ele volta como está e a API do Meta não é chamada
func (s *Service) CreateDailySnapshot(date time.Time) (*domain.AccountSnapshot, error) {
	accountID := s.cfg.Meta.AdAccountID

	existing, err := s.snapshotRepository.GetByAccountAndDate(accountID, date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshot existente: %w", err)
	}

	if existing != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"date":       date.Format(time.DateOnly),
		}).Info("Snapshot já existente para a data, captura ignorada")
		return existing, nil
	}

	snapshot, err := s.metaService.GetAccountSnapshot(date)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": accountID,
			"date":       date.Format(time.DateOnly),
		}).Error("Erro ao obter snapshot da conta do Meta")
		return nil, err
	}

	if err := s.snapshotRepository.Insert(snapshot); err != nil {
		if err == domain.ErrAlreadyExists {
			// Outra captura venceu a corrida; devolve o registro dela
			return s.snapshotRepository.GetByAccountAndDate(accountID, date)
		}
		return nil, fmt.Errorf("erro ao persistir snapshot: %w", err)
	}

	saved, err := s.snapshotRepository.GetByAccountAndDate(accountID, date)
	if err != nil {
		return nil, fmt.Errorf("erro ao reler snapshot persistido: %w", err)
	}
	if saved != nil {
		return saved, nil
	}

	return snapshot, nil
}

// CreateEventsHealthSnapshot captura o retrato de saúde de eventos do pixel
// para a data. Contas sem pixel resultam em nil sem erro
func (s *Service) CreateEventsHealthSnapshot(date time.Time) (*domain.EventsHealth, error) {
	existing, err := s.eventsHealthRepository.GetAt(date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar saúde de eventos existente: %w", err)
	}

	if existing != nil {
		logrus.WithFields(logrus.Fields{
			"date": date.Format(time.DateOnly),
		}).Info("Saúde de eventos já existente para a data, captura ignorada")
		return existing, nil
	}

	health, err := s.metaService.GetEventsHealth(date)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"date": date.Format(time.DateOnly),
		}).Error("Erro ao obter saúde de eventos do Meta")
		return nil, err
	}

	if health == nil {
		logrus.WithFields(logrus.Fields{
			"date": date.Format(time.DateOnly),
		}).Warn("Conta sem pixels configurados, saúde de eventos não capturada")
		return nil, nil
	}

	if err := s.eventsHealthRepository.Insert(health); err != nil {
		if err == domain.ErrAlreadyExists {
			return s.eventsHealthRepository.GetAt(date)
		}
		return nil, fmt.Errorf("erro ao persistir saúde de eventos: %w", err)
	}

	saved, err := s.eventsHealthRepository.GetAt(date)
	if err != nil {
		return nil, fmt.Errorf("erro ao reler saúde de eventos persistida: %w", err)
	}
	if saved != nil {
		return saved, nil
	}

	return health, nil
}

// ListSnapshots lista os snapshots mais recentes da conta
func (s *Service) ListSnapshots(limit int) ([]*domain.AccountSnapshot, error) {
	snapshots, err := s.snapshotRepository.List(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar snapshots: %w", err)
	}

	return snapshots, nil
}
