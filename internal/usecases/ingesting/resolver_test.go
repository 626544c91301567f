package ingesting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adsmaster-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adsmaster-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestAccountResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		externalID  string
		accountName string
		setup       func(repo *mocks.MockAccountRepository)
		wantID      string
		wantErr     bool
	}{
		{
			name:        "cria conta nova com o nome enviado",
			externalID:  "123-456-7890",
			accountName: "Loja Centro",
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().
					CreateIfNotExists(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, acc *domain.Account) (bool, error) {
						assert.Equal(t, "NEWID0000001", acc.ID)
						assert.Equal(t, "123-456-7890", acc.GoogleAdsAccountID)
						assert.Equal(t, "Loja Centro", acc.Name)
						return true, nil
					})
			},
			wantID: "NEWID0000001",
		},
		{
			name:       "usa nome padrão quando não informado",
			externalID: " 123-456-7890 ",
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().
					CreateIfNotExists(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, acc *domain.Account) (bool, error) {
						assert.Equal(t, "123-456-7890", acc.GoogleAdsAccountID)
						assert.Equal(t, "Conta - 123-456-7890", acc.Name)
						return true, nil
					})
			},
			wantID: "NEWID0000001",
		},
		{
			name:        "conta existente mantém id e nome originais",
			externalID:  "123-456-7890",
			accountName: "Outro Nome",
			setup: func(repo *mocks.MockAccountRepository) {
				gomock.InOrder(
					repo.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(false, nil),
					repo.EXPECT().
						GetByGoogleAdsAccountID(gomock.Any(), "123-456-7890").
						Return(&domain.Account{ID: "EXISTING0001", GoogleAdsAccountID: "123-456-7890", Name: "Loja Centro"}, nil),
				)
			},
			wantID: "EXISTING0001",
		},
		{
			name:       "falha ao inserir propaga erro",
			externalID: "123-456-7890",
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name:       "falha ao reler conta propaga erro",
			externalID: "123-456-7890",
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().GetByGoogleAdsAccountID(gomock.Any(), "123-456-7890").Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
		{
			name:       "conflito sem conta para reler",
			externalID: "123-456-7890",
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().GetByGoogleAdsAccountID(gomock.Any(), "123-456-7890").Return(nil, nil)
			},
			wantErr: true,
		},
		{
			name:       "id externo vazio",
			externalID: "  ",
			setup:      func(repo *mocks.MockAccountRepository) {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockAccountRepository(ctrl)
			tt.setup(repo)

			resolver := NewAccountResolver(repo, nil)
			resolver.generateID = func() (string, error) { return "NEWID0000001", nil }

			id, err := resolver.Resolve(ctx, tt.externalID, tt.accountName)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, id)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
