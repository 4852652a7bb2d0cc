package assignment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tessera/internal/assignment/ports/mocks"
	"tessera/pkg/domain"
	dErrors "tessera/pkg/domain-errors"
	"tessera/pkg/events"
	eventsmemory "tessera/pkg/events/memory"
)

type AssignServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	source    *mocks.MockRandomnessSource
	publisher *eventsmemory.Publisher
	svc       *Service
	ctx       context.Context
	pool      []string
}

func (s *AssignServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = mocks.NewMockRandomnessSource(s.ctrl)
	s.publisher = eventsmemory.New()
	s.ctx = context.Background()
	s.pool = []string{"Amara Capital", "Baobab Trust", "Cedar Asset Mgmt"}

	svc, err := New(s.source, WithPublisher(s.publisher))
	s.Require().NoError(err)
	s.svc = svc
}

func TestAssignServiceSuite(t *testing.T) {
	suite.Run(t, new(AssignServiceSuite))
}

func (s *AssignServiceSuite) TestNew() {
	_, err := New(nil)
	s.Require().EqualError(err, "randomness source is required")
}

func (s *AssignServiceSuite) TestAssignWithVerifiableRandomness() {
	assetID := domain.NewAssetID()
	s.source.EXPECT().RequestRandomHex(gomock.Any()).Return("a", nil)

	assignment, err := s.svc.Assign(s.ctx, assetID, s.pool)
	s.Require().NoError(err)

	s.Equal(assetID, assignment.AssetID)
	s.False(assignment.ID.IsNil())
	s.Equal("Baobab Trust", assignment.Selected) // 0xa mod 3 = 1
	s.Equal("a", assignment.RandomHex)
	s.InDelta(VerifiableConfidence, assignment.Confidence, 1e-9)
	s.Equal(s.pool, assignment.CandidatePool)
	s.Contains(assignment.Reason, assignment.Selected)

	emitted := s.publisher.ByName(events.EventAMCAssigned)
	s.Require().Len(emitted, 1)
	s.Equal(assetID.String(), emitted[0].AssetID)
	s.Equal("Baobab Trust", emitted[0].Payload["selected"])
}

func (s *AssignServiceSuite) TestAssignFallsBackToLocalDraw() {
	s.source.EXPECT().RequestRandomHex(gomock.Any()).Return("", errors.New("beacon unreachable"))

	assignment, err := s.svc.Assign(s.ctx, domain.NewAssetID(), s.pool)
	s.Require().NoError(err)

	s.InDelta(FallbackConfidence, assignment.Confidence, 1e-9)
	s.Contains(s.pool, assignment.Selected)
	s.NotEmpty(assignment.RandomHex)
}

func (s *AssignServiceSuite) TestAssignFallsBackOnMalformedBeaconValue() {
	// A beacon that answers with garbage is as unavailable as one that does
	// not answer at all.
	s.source.EXPECT().RequestRandomHex(gomock.Any()).Return("not-hex!", nil)

	assignment, err := s.svc.Assign(s.ctx, domain.NewAssetID(), s.pool)
	s.Require().NoError(err)

	s.InDelta(FallbackConfidence, assignment.Confidence, 1e-9)
	s.Contains(s.pool, assignment.Selected)
	s.NotEqual("not-hex!", assignment.RandomHex)
}

func (s *AssignServiceSuite) TestAssignInputErrors() {
	s.Run("nil asset id", func() {
		_, err := s.svc.Assign(s.ctx, domain.AssetID{}, s.pool)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("empty pool", func() {
		_, err := s.svc.Assign(s.ctx, domain.NewAssetID(), nil)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func (s *AssignServiceSuite) TestAssignSurvivesPublishFailure() {
	failing := mocks.NewMockEventPublisher(s.ctrl)
	failing.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	s.source.EXPECT().RequestRandomHex(gomock.Any()).Return("ff", nil)

	svc, err := New(s.source, WithPublisher(failing))
	s.Require().NoError(err)

	assignment, err := svc.Assign(s.ctx, domain.NewAssetID(), s.pool)
	s.Require().NoError(err)
	s.Contains(s.pool, assignment.Selected)
}
