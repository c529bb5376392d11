package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rgdevment/opinion-brief/internal/domain"
	"github.com/rgdevment/opinion-brief/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockExporter struct {
	calls int
	err   error
}

func (m *MockExporter) Export(text string) ([]byte, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return []byte(text), nil
}

func (m *MockExporter) ContentType() string { return "text/plain" }

func (m *MockExporter) FileName() string { return "report.txt" }

func validInput() domain.ReportInput {
	return domain.ReportInput{
		Date:       time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC),
		Time:       "09:08:22",
		Platform:   "抖音",
		Author:     "张三",
		Region:     "湖滨区",
		Content:    "测试内容",
		Count:      1,
		DeleteType: domain.DefaultDeleteType,
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		Name     string
		Mutate   func(in *domain.ReportInput)
		Expected error
	}{
		{"valid", func(in *domain.ReportInput) {}, nil},
		{"blank author", func(in *domain.ReportInput) { in.Author = "  " }, service.ErrMissingRequired},
		{"blank content", func(in *domain.ReportInput) { in.Content = "" }, service.ErrMissingRequired},
		{"missing fields checked before time", func(in *domain.ReportInput) {
			in.Author = ""
			in.Time = "bad"
		}, service.ErrMissingRequired},
		{"bad event time", func(in *domain.ReportInput) { in.Time = "9:08:22" }, service.ErrInvalidEventTime},
		{"empty event time", func(in *domain.ReportInput) { in.Time = "" }, service.ErrInvalidEventTime},
		{"bad delete time", func(in *domain.ReportInput) {
			in.Deleted = true
			in.DeleteTime = "9:22"
		}, service.ErrInvalidDeleteTime},
		{"delete time ignored when not deleted", func(in *domain.ReportInput) { in.DeleteTime = "garbage" }, nil},
		{"deleted without time", func(in *domain.ReportInput) { in.Deleted = true }, nil},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			in := validInput()
			tc.Mutate(&in)

			err := service.Validate(in)
			if tc.Expected == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tc.Expected)
			var vErr *service.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.NotEmpty(t, vErr.Message)
		})
	}
}

func TestGenerate(t *testing.T) {
	svc := service.NewReportService(nil)

	report, err := svc.Generate(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEqual(t, "", report.ID.String())
	assert.Contains(t, report.Text, "湖滨区地区测试内容。")

	_, err = svc.Generate(context.Background(), domain.ReportInput{})
	assert.ErrorIs(t, err, service.ErrMissingRequired)
}

func TestExport(t *testing.T) {
	exp := &MockExporter{}
	svc := service.NewReportService(map[string]service.Exporter{"txt": exp})

	report, doc, err := svc.Export(context.Background(), validInput(), "txt")
	require.NoError(t, err)
	assert.Equal(t, report.Text, string(doc.Data))
	assert.Equal(t, "report.txt", doc.FileName)
	assert.Equal(t, 1, exp.calls)

	_, _, err = svc.Export(context.Background(), validInput(), "pdf")
	assert.ErrorIs(t, err, service.ErrUnknownFormat)

	in := validInput()
	in.Time = "25:00:00"
	_, _, err = svc.Export(context.Background(), in, "txt")
	assert.ErrorIs(t, err, service.ErrInvalidEventTime)
	assert.Equal(t, 1, exp.calls, "exporter must not run on rejected input")
}

func TestExportFailure(t *testing.T) {
	boom := errors.New("disk full")
	svc := service.NewReportService(map[string]service.Exporter{"docx": &MockExporter{err: boom}})

	_, _, err := svc.Export(context.Background(), validInput(), "docx")
	assert.ErrorIs(t, err, boom)
}
