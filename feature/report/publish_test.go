package report_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"housenumber-audit/core/reconcile"
	"housenumber-audit/core/storage/mocks"
	"housenumber-audit/feature/report"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPublish_CreatesBucketAndUploadsJSON(t *testing.T) {
	ctx := context.Background()
	rep := &reconcile.Report{
		Suspicious: []reconcile.StreetNumbers{{Street: "Fő utca", HouseNumbers: []string{"3"}}},
		Done:       []reconcile.StreetNumbers{},
		Summary:    reconcile.Summary{Streets: 1, SuspiciousStreets: 1, MissingNumbers: 1},
	}

	var uploaded []byte
	client := new(mocks.Client)
	client.On("BucketExists", ctx, "housenumbers").Return(false, nil)
	client.On("MakeBucket", ctx, "housenumbers", minio.MakeBucketOptions{}).Return(nil)
	client.On("PutObject", ctx, "housenumbers", "reports/budafok.json", mock.Anything, mock.AnythingOfType("int64"),
		minio.PutObjectOptions{ContentType: "application/json"}).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			uploaded = data
		}).
		Return(minio.UploadInfo{}, nil)

	object, err := report.Publish(ctx, client, "housenumbers", "budafok", rep)
	require.NoError(t, err)
	assert.Equal(t, "reports/budafok.json", object)
	client.AssertExpectations(t)

	var decoded reconcile.Report
	require.NoError(t, json.Unmarshal(uploaded, &decoded))
	assert.Equal(t, rep.Suspicious, decoded.Suspicious)
	assert.Equal(t, 1, decoded.Summary.MissingNumbers)
}

func TestPublish_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("BucketCheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "b").Return(false, errors.New("denied"))

		_, err := report.Publish(ctx, client, "b", "budafok", &reconcile.Report{})
		assert.ErrorContains(t, err, "denied")
	})

	t.Run("UploadFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "b").Return(true, nil)
		client.On("PutObject", ctx, "b", "reports/budafok.json", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("quota"))

		_, err := report.Publish(ctx, client, "b", "budafok", &reconcile.Report{})
		assert.ErrorContains(t, err, "quota")
	})
}
