package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks ContentStore,TagStore,TopicCenterStore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cobalt/internal/content/models"
	"cobalt/internal/content/responses"
	"cobalt/internal/content/service/mocks"
	"cobalt/internal/format"
	"cobalt/internal/platform/metrics"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/supplement"
	"cobalt/pkg/testutil"
)

type ServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	contents     *mocks.MockContentStore
	tags         *mocks.MockTagStore
	topicCenters *mocks.MockTopicCenterStore
	metrics      *metrics.Metrics
	formatter    *format.Formatter
	service      *Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.contents = mocks.NewMockContentStore(s.ctrl)
	s.tags = mocks.NewMockTagStore(s.ctrl)
	s.topicCenters = mocks.NewMockTopicCenterStore(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.formatter = testutil.USFormatter(s.T())
	s.service = New(s.contents, s.tags, s.topicCenters,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestGetContent() {
	content := testutil.Content(testutil.Tag("SLEEP", "Sleep"))
	s.contents.EXPECT().FindContent(gomock.Any(), content.ID).Return(content, nil)

	r, err := s.service.GetContent(context.Background(), s.formatter, content.ID, supplement.Of(responses.SupplementTags))
	s.Require().NoError(err)
	s.Require().Len(r.Tags, 1)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.ResponsesRendered.WithLabelValues("content")))

	s.Run("not found", func() {
		missing := id.ContentID(uuid.New())
		s.contents.EXPECT().FindContent(gomock.Any(), missing).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.GetContent(context.Background(), s.formatter, missing, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestGetTopicCenter() {
	topicCenter := &models.TopicCenter{ID: id.TopicCenterID(uuid.New()), InstitutionID: "COBALT", Name: "Wellbeing"}
	rows := []*models.TopicCenterRow{{ID: id.TopicCenterRowID(uuid.New()), Title: "Videos"}}

	s.Run("uses the viewer institution for tags", func() {
		ctx := requestcontext.WithInstitutionID(context.Background(), "OTHER")
		s.topicCenters.EXPECT().FindTopicCenter(gomock.Any(), topicCenter.ID).Return(topicCenter, nil)
		s.topicCenters.EXPECT().ListTopicCenterRows(gomock.Any(), topicCenter.ID).Return(rows, nil)
		s.tags.EXPECT().ListTags(gomock.Any(), id.InstitutionID("OTHER")).Return([]*models.Tag{testutil.Tag("SLEEP", "Sleep")}, nil)

		r, err := s.service.GetTopicCenter(ctx, s.formatter, topicCenter.ID)
		s.Require().NoError(err)
		s.Len(r.TopicCenterRows, 1)
		s.Contains(r.TagsByTagID, "SLEEP")
	})

	s.Run("falls back to the topic center institution", func() {
		s.topicCenters.EXPECT().FindTopicCenter(gomock.Any(), topicCenter.ID).Return(topicCenter, nil)
		s.topicCenters.EXPECT().ListTopicCenterRows(gomock.Any(), topicCenter.ID).Return(nil, nil)
		s.tags.EXPECT().ListTags(gomock.Any(), id.InstitutionID("COBALT")).Return(nil, nil)

		r, err := s.service.GetTopicCenter(context.Background(), s.formatter, topicCenter.ID)
		s.Require().NoError(err)
		s.Empty(r.TopicCenterRows)
	})

	s.Run("row store failure", func() {
		s.topicCenters.EXPECT().FindTopicCenter(gomock.Any(), topicCenter.ID).Return(topicCenter, nil)
		s.topicCenters.EXPECT().ListTopicCenterRows(gomock.Any(), topicCenter.ID).Return(nil, errors.New("timeout"))

		_, err := s.service.GetTopicCenter(context.Background(), s.formatter, topicCenter.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ServiceSuite) TestListTagGroups() {
	s.tags.EXPECT().ListTagGroups(gomock.Any(), id.InstitutionID("COBALT")).Return([]*models.TagGroup{
		{ID: "MOOD", Name: "Mood", ColorID: "BRAND_PRIMARY"},
	}, nil)

	out, err := s.service.ListTagGroups(context.Background(), "COBALT")
	s.Require().NoError(err)
	s.Require().Len(out, 1)
	s.Equal("MOOD", out[0].TagGroupID)
}
