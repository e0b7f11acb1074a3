package campaigns

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
	adsmocks "github.com/google-marketing-solutions/madpmax-sub000/core/ads/mocks"
	"github.com/google-marketing-solutions/madpmax-sub000/core/sheets"
	sheetmocks "github.com/google-marketing-solutions/madpmax-sub000/core/sheets/mocks"
)

func newTestService() (*Service, *sheetmocks.Client, *adsmocks.Client) {
	sheetsMock := new(sheetmocks.Client)
	adsMock := new(adsmocks.Client)
	svc := NewService(sheetsMock, adsMock, nil, zap.NewNop())
	return svc, sheetsMock, adsMock
}

func messageContaining(substr string) interface{} {
	return mock.MatchedBy(func(v string) bool {
		return strings.Contains(v, substr)
	})
}

func TestRun_SuccessfulUpload(t *testing.T) {
	svc, sheetsMock, adsMock := newTestService()

	sheetsMock.On("ReadRows", mock.Anything, sheets.SheetCustomerList).
		Return([]sheets.Row{{"Acme", "1234567890"}}, nil)
	sheetsMock.On("ReadRows", mock.Anything, SheetNewCampaigns).
		Return([]sheets.Row{validRow()}, nil)

	adsMock.On("Mutate", mock.Anything, "1234567890", mock.Anything).
		Return(&ads.MutateResponse{Results: []ads.MutateResult{
			{ResourceName: "customers/1234567890/campaignBudgets/55"},
			{ResourceName: "customers/1234567890/campaigns/777"},
		}}, nil)

	sheetsMock.On("UpdateCell", mock.Anything, SheetNewCampaigns, 0, colStatus, "UPLOADED").Return(nil)
	sheetsMock.On("UpdateCell", mock.Anything, SheetNewCampaigns, 0, colError, "").Return(nil)
	sheetsMock.On("AppendRow", mock.Anything, sheets.SheetCampaignList,
		[]string{"Acme;Summer Sale", "customers/1234567890/campaigns/777"}).Return(nil)

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Uploaded)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 0, summary.Skipped)

	sheetsMock.AssertExpectations(t)
	adsMock.AssertExpectations(t)
}

func TestRun_ValidationErrorSkipsRemoteCall(t *testing.T) {
	svc, sheetsMock, adsMock := newTestService()

	row := validRow()
	row[3] = "" // budget

	sheetsMock.On("ReadRows", mock.Anything, sheets.SheetCustomerList).
		Return([]sheets.Row{{"Acme", "1234567890"}}, nil)
	sheetsMock.On("ReadRows", mock.Anything, SheetNewCampaigns).
		Return([]sheets.Row{row}, nil)

	sheetsMock.On("UpdateCell", mock.Anything, SheetNewCampaigns, 0, colStatus, "ERROR").Return(nil)
	sheetsMock.On("UpdateCell", mock.Anything, SheetNewCampaigns, 0, colError, messageContaining("budget")).Return(nil)

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)

	adsMock.AssertNumberOfCalls(t, "Mutate", 0)
	sheetsMock.AssertExpectations(t)
}

func TestRun_UploadedRowIsSkipped(t *testing.T) {
	svc, sheetsMock, adsMock := newTestService()

	row := validRow()
	row[0] = "UPLOADED"

	sheetsMock.On("ReadRows", mock.Anything, sheets.SheetCustomerList).
		Return([]sheets.Row{{"Acme", "1234567890"}}, nil)
	sheetsMock.On("ReadRows", mock.Anything, SheetNewCampaigns).
		Return([]sheets.Row{row}, nil)

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Uploaded)

	adsMock.AssertNumberOfCalls(t, "Mutate", 0)
	sheetsMock.AssertNumberOfCalls(t, "UpdateCell", 0)
}

func TestRun_TransportFailureMarksRowError(t *testing.T) {
	svc, sheetsMock, adsMock := newTestService()

	sheetsMock.On("ReadRows", mock.Anything, sheets.SheetCustomerList).
		Return([]sheets.Row{{"Acme", "1234567890"}}, nil)
	sheetsMock.On("ReadRows", mock.Anything, SheetNewCampaigns).
		Return([]sheets.Row{validRow()}, nil)

	adsMock.On("Mutate", mock.Anything, "1234567890", mock.Anything).
		Return(nil, errors.New("auth failed"))

	sheetsMock.On("UpdateCell", mock.Anything, SheetNewCampaigns, 0, colStatus, "ERROR").Return(nil)
	sheetsMock.On("UpdateCell", mock.Anything, SheetNewCampaigns, 0, colError, messageContaining("auth failed")).Return(nil)

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)

	sheetsMock.AssertNotCalled(t, "AppendRow", mock.Anything, mock.Anything, mock.Anything)
	sheetsMock.AssertExpectations(t)
}

func TestRun_UnknownCustomer(t *testing.T) {
	svc, sheetsMock, adsMock := newTestService()

	sheetsMock.On("ReadRows", mock.Anything, sheets.SheetCustomerList).
		Return([]sheets.Row{}, nil)
	sheetsMock.On("ReadRows", mock.Anything, SheetNewCampaigns).
		Return([]sheets.Row{validRow()}, nil)

	sheetsMock.On("UpdateCell", mock.Anything, SheetNewCampaigns, 0, colStatus, "ERROR").Return(nil)
	sheetsMock.On("UpdateCell", mock.Anything, SheetNewCampaigns, 0, colError, messageContaining("unknown customer")).Return(nil)

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)

	adsMock.AssertNumberOfCalls(t, "Mutate", 0)
}

func TestRun_SheetReadFailure(t *testing.T) {
	svc, sheetsMock, _ := newTestService()

	sheetsMock.On("ReadRows", mock.Anything, sheets.SheetCustomerList).
		Return(nil, errors.New("read failed"))

	_, err := svc.Run(context.Background())
	assert.Error(t, err)
}
