package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adsmaster-api/infrastructure/repository"
	"github.com/vfg2006/adsmaster-api/internal/config"
	"github.com/vfg2006/adsmaster-api/internal/domain"
	"github.com/vfg2006/adsmaster-api/pkg/metrics"
	"github.com/vfg2006/adsmaster-api/pkg/utils"
)

const defaultStaleAfterDays = 1

// FreshnessMonitorConfig representa a configuração da verificação de contas sem métricas recentes
type FreshnessMonitorConfig struct {
	CronSchedule   string
	StaleAfterDays int
	Enabled        bool
}

// StaleAccount é uma conta cuja última métrica é mais antiga que o limite configurado
type StaleAccount struct {
	GoogleAdsAccountID string     `json:"google_ads_account_id"`
	Name               string     `json:"name"`
	LastMetricDate     *time.Time `json:"last_metric_date"`
	DaysWithoutData    int        `json:"days_without_data"`
}

// FreshnessMonitorService verifica periodicamente se o script do Google Ads continua enviando dados.
// O script não reenvia chamadas com falha, então dias perdidos só aparecem aqui.
type FreshnessMonitorService struct {
	scheduler    *gocron.Scheduler
	config       FreshnessMonitorConfig
	accountRepo  repository.AccountRepository
	observer     *metrics.Metrics
	location     *time.Location
	now          func() time.Time
	checkRunning bool
	checkMutex   sync.Mutex

	lastCheckStartedAt   time.Time
	lastCheckCompletedAt time.Time
	lastStaleAccounts    []StaleAccount
}

func NewFreshnessMonitorService(
	accountRepo repository.AccountRepository,
	observer *metrics.Metrics,
	appConfig *config.Config,
) *FreshnessMonitorService {
	monitorConfig := FreshnessMonitorConfig{
		CronSchedule:   appConfig.FreshnessMonitor.CronSchedule,
		StaleAfterDays: appConfig.FreshnessMonitor.StaleAfterDays,
		Enabled:        appConfig.FreshnessMonitor.Enabled,
	}
	if monitorConfig.StaleAfterDays <= 0 {
		monitorConfig.StaleAfterDays = defaultStaleAfterDays
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.UTC
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    monitorConfig.CronSchedule,
		"stale_after_days": monitorConfig.StaleAfterDays,
		"enabled":          monitorConfig.Enabled,
	}).Info("Configuração do monitor de atualização carregada")

	return &FreshnessMonitorService{
		scheduler:   gocron.NewScheduler(location),
		config:      monitorConfig,
		accountRepo: accountRepo,
		observer:    observer,
		location:    location,
		now:         time.Now,
	}
}

// Start agenda a verificação e para o agendador quando o contexto for cancelado
func (s *FreshnessMonitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor de atualização desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando monitor de atualização das contas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCheck(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitor de atualização: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor de atualização das contas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *FreshnessMonitorService) runCheck(ctx context.Context) {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação de atualização já em andamento, ignorando")
		return
	}
	s.checkRunning = true
	s.lastCheckStartedAt = s.now()
	s.checkMutex.Unlock()

	defer func() {
		s.checkMutex.Lock()
		s.checkRunning = false
		s.checkMutex.Unlock()
	}()

	if _, err := s.CheckFreshness(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao verificar atualização das contas")
	}
}

// CheckFreshness lista as contas sem métricas há mais de StaleAfterDays dias, incluindo as que nunca receberam métricas
func (s *FreshnessMonitorService) CheckFreshness(ctx context.Context) ([]StaleAccount, error) {
	accounts, err := s.accountRepo.ListWithLastMetricDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas: %w", err)
	}

	today := utils.StartOfDay(s.now(), s.location)
	stale := make([]StaleAccount, 0)

	for _, acc := range accounts {
		item, isStale := s.evaluate(acc, today)
		if !isStale {
			continue
		}

		logrus.WithFields(logrus.Fields{
			"google_ads_account_id": acc.GoogleAdsAccountID,
			"account_name":          acc.Name,
			"days_without_data":     item.DaysWithoutData,
		}).Warn("Conta sem métricas recentes")

		stale = append(stale, item)
	}

	s.observer.SetStaleAccounts(len(stale))

	s.checkMutex.Lock()
	s.lastStaleAccounts = stale
	s.lastCheckCompletedAt = s.now()
	s.checkMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"accounts":       len(accounts),
		"stale_accounts": len(stale),
	}).Info("Verificação de atualização concluída")

	return stale, nil
}

func (s *FreshnessMonitorService) evaluate(acc *domain.AccountActivity, today time.Time) (StaleAccount, bool) {
	item := StaleAccount{
		GoogleAdsAccountID: acc.GoogleAdsAccountID,
		Name:               acc.Name,
		LastMetricDate:     acc.LastMetricDate,
	}

	if acc.LastMetricDate == nil {
		item.DaysWithoutData = -1
		return item, true
	}

	days := int(today.Sub(*acc.LastMetricDate).Hours() / 24)
	item.DaysWithoutData = days

	return item, days > s.config.StaleAfterDays
}

// TriggerManualSync inicia manualmente uma verificação de atualização
func (s *FreshnessMonitorService) TriggerManualSync() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação de atualização já em andamento, ignorando solicitação manual")
		return
	}
	s.checkMutex.Unlock()

	logrus.Info("Iniciando verificação manual de atualização das contas")
	go s.runCheck(context.Background())
}

// GetStatus retorna o status atual do monitor
func (s *FreshnessMonitorService) GetStatus() map[string]any {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	return map[string]any{
		"enabled":                 s.config.Enabled,
		"cron":                    s.config.CronSchedule,
		"stale_after_days":        s.config.StaleAfterDays,
		"running":                 s.checkRunning,
		"last_check_started_at":   s.lastCheckStartedAt,
		"last_check_completed_at": s.lastCheckCompletedAt,
		"stale_accounts":          s.lastStaleAccounts,
	}
}
