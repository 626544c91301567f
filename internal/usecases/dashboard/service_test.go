package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adsmaster-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adsmaster-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func view(campaign, date string, cost, convValue float64, conversions float64) *domain.CampaignMetricView {
	d, _ := time.Parse(time.DateOnly, date)
	return &domain.CampaignMetricView{
		CampaignMetric: domain.CampaignMetric{
			CampaignName:    campaign,
			Date:            d,
			Cost:            cost,
			ConversionValue: convValue,
			Conversions:     conversions,
			Profit:          domain.CalculateProfit(convValue, cost),
		},
		Account: &domain.AccountRef{Name: "Loja Centro", GoogleAdsAccountID: "123-456-7890"},
	}
}

func TestService_GetDashboard(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 02:30 UTC ainda é dia 9 em São Paulo
	now := time.Date(2024, 6, 10, 2, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		days      int
		setup     func(repo *mocks.MockCampaignMetricRepository)
		wantErr   error
		wantStart string
		wantEnd   string
		validate  func(t *testing.T, resp *domain.DashboardResponse)
	}{
		{
			name: "hoje no fuso configurado",
			days: 1,
			setup: func(repo *mocks.MockCampaignMetricRepository) {
				repo.EXPECT().
					ListBetween(gomock.Any(), time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)).
					Return([]*domain.CampaignMetricView{}, nil)
			},
			wantStart: "2024-06-09",
			wantEnd:   "2024-06-09",
			validate: func(t *testing.T, resp *domain.DashboardResponse) {
				assert.Empty(t, resp.Rows)
				assert.Empty(t, resp.Series)
				assert.Zero(t, resp.Totals.Profit)
			},
		},
		{
			name: "últimos 7 dias com totais",
			days: 7,
			setup: func(repo *mocks.MockCampaignMetricRepository) {
				repo.EXPECT().
					ListBetween(gomock.Any(), time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)).
					Return([]*domain.CampaignMetricView{
						view("Search - Brand", "2024-06-09", 100, 250, 5),
						view("Display", "2024-06-08", 300, 100, 2),
					}, nil)
			},
			wantStart: "2024-06-03",
			wantEnd:   "2024-06-09",
			validate: func(t *testing.T, resp *domain.DashboardResponse) {
				require.Len(t, resp.Rows, 2)
				assert.Equal(t, -50.0, resp.Totals.Profit)
				assert.Equal(t, 400.0, resp.Totals.Cost)
				assert.Equal(t, domain.RiskBrutalROI, resp.Rows[0].RiskLabel)
				assert.Equal(t, domain.RiskLoss, resp.Rows[1].RiskLabel)
				assert.Equal(t, "Loja Centro", resp.Rows[0].Account.Name)

				require.Len(t, resp.Series, 2)
				assert.Equal(t, domain.DailyTotals{Date: "2024-06-08", Cost: 300, ConversionValue: 100, Profit: -200}, resp.Series[0])
				assert.Equal(t, domain.DailyTotals{Date: "2024-06-09", Cost: 100, ConversionValue: 250, Profit: 150}, resp.Series[1])
			},
		},
		{
			name:    "days zero",
			days:    0,
			setup:   func(repo *mocks.MockCampaignMetricRepository) {},
			wantErr: ErrInvalidDays,
		},
		{
			name:    "days acima do limite",
			days:    MaxDays + 1,
			setup:   func(repo *mocks.MockCampaignMetricRepository) {},
			wantErr: ErrInvalidDays,
		},
		{
			name: "erro no banco",
			days: 30,
			setup: func(repo *mocks.MockCampaignMetricRepository) {
				repo.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			wantErr: ErrFetchMetrics,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockCampaignMetricRepository(ctrl)
			tt.setup(repo)

			svc := NewService(repo, saoPaulo)
			svc.now = func() time.Time { return now }

			resp, err := svc.GetDashboard(context.Background(), tt.days)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.days, resp.Filters.Days)
			assert.Equal(t, tt.wantStart, resp.Filters.StartDate)
			assert.Equal(t, tt.wantEnd, resp.Filters.EndDate)
			if tt.validate != nil {
				tt.validate(t, resp)
			}
		})
	}
}
