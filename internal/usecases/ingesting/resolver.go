package ingesting

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/adsmaster-api/infrastructure/repository"
	"github.com/vfg2006/adsmaster-api/internal/domain"
	"github.com/vfg2006/adsmaster-api/pkg/apiErrors"
	"github.com/vfg2006/adsmaster-api/pkg/log"
	"github.com/vfg2006/adsmaster-api/pkg/metrics"
	"github.com/vfg2006/adsmaster-api/pkg/utils"
)

// AccountResolver devolve o id interno da conta, criando-a na primeira ingestão.
// A criação é um insert condicional; se outra requisição venceu a corrida, a conta existente é relida.
type AccountResolver struct {
	accounts   repository.AccountRepository
	metrics    *metrics.Metrics
	generateID func() (string, error)
}

func NewAccountResolver(accounts repository.AccountRepository, m *metrics.Metrics) *AccountResolver {
	return &AccountResolver{
		accounts:   accounts,
		metrics:    m,
		generateID: utils.GenerateID,
	}
}

func (r *AccountResolver) Resolve(ctx context.Context, googleAdsAccountID, accountName string) (string, error) {
	googleAdsAccountID = strings.TrimSpace(googleAdsAccountID)
	if googleAdsAccountID == "" {
		return "", NewFieldError(ErrMissingRequiredField, apiErrors.ErrMissingRequiredData, "google_ads_account_id", "")
	}

	name := strings.TrimSpace(accountName)
	if name == "" {
		name = domain.FallbackAccountName(googleAdsAccountID)
	}

	id, err := r.generateID()
	if err != nil {
		return "", errors.Wrap(ErrGenerateID, err.Error())
	}

	account := &domain.Account{
		ID:                 id,
		GoogleAdsAccountID: googleAdsAccountID,
		Name:               name,
	}

	created, err := r.accounts.CreateIfNotExists(ctx, account)
	if err != nil {
		return "", errors.Wrapf(err, "%s %s", ErrResolveAccount, googleAdsAccountID)
	}

	logger := log.ForContext(ctx).WithField("google_ads_account_id", googleAdsAccountID)

	if created {
		r.metrics.ObserveAccountCreated()
		logger.WithField("account_id", account.ID).Info("Nova conta criada a partir do webhook")
		return account.ID, nil
	}

	existing, err := r.accounts.GetByGoogleAdsAccountID(ctx, googleAdsAccountID)
	if err != nil {
		return "", errors.Wrapf(err, "%s %s", ErrResolveAccount, googleAdsAccountID)
	}
	if existing == nil {
		return "", errors.Errorf("%s %s: conta não encontrada após conflito", ErrResolveAccount, googleAdsAccountID)
	}

	logger.WithField("account_id", existing.ID).Debug("Conta existente reutilizada")

	return existing.ID, nil
}
