package qr

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domainAsset "asset-tracker/internal/domain/asset"
	"asset-tracker/internal/infrastructure/database/postgres"
	"asset-tracker/internal/infrastructure/database/postgres/models"
	"asset-tracker/internal/logger"
	appErrors "asset-tracker/pkg/errors"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *postgres.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:qr_service_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&models.UserModel{},
		&models.AssetModel{},
		&models.QrCodeModel{},
		&models.VerificationLogModel{},
		&models.ComplaintModel{},
	))

	return &postgres.DB{DB: conn}
}

func newTestService(t *testing.T) (*Service, *postgres.DB) {
	t.Helper()

	db := newTestDB(t)
	qrRepo := postgres.NewQrCodeRepository(db)
	assetRepo := postgres.NewAssetRepository(db)
	return NewService(qrRepo, assetRepo, db), db
}

func appErrorCode(t *testing.T, err error) string {
	t.Helper()

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func countRows(t *testing.T, db *postgres.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.DB.Model(model).Count(&count).Error)
	return count
}

func TestGenerateCodes_PersistsRequestedCount(t *testing.T) {
	svc, store := newTestService(t)
	actor := uuid.New()

	resp, err := svc.GenerateCodes(context.Background(), &GenerateRequest{Count: 10}, actor)
	require.NoError(t, err)

	assert.Equal(t, 10, resp.Requested)
	assert.Equal(t, 10, resp.Created)
	assert.Len(t, resp.Codes, 10)

	assert.Equal(t, int64(10), countRows(t, store, &models.QrCodeModel{}))

	var assigned int64
	require.NoError(t, store.DB.Model(&models.QrCodeModel{}).
		Where("is_assigned = ?", true).
		Count(&assigned).Error)
	assert.Zero(t, assigned)
}

func TestGenerateCodes_RejectsInvalidCount(t *testing.T) {
	svc, _ := newTestService(t)
	actor := uuid.New()

	for _, count := range []int{0, -5, 101} {
		_, err := svc.GenerateCodes(context.Background(), &GenerateRequest{Count: count}, actor)
		require.Error(t, err, "count %d", count)
		assert.Equal(t, appErrors.CodeValidation, appErrorCode(t, err), "count %d", count)
	}
}

func TestRegisterAsset_BindsCodeToNewAsset(t *testing.T) {
	svc, store := newTestService(t)
	actor := uuid.New()

	generated, err := svc.GenerateCodes(context.Background(), &GenerateRequest{Count: 1}, actor)
	require.NoError(t, err)
	code := generated.Codes[0]

	serial := "SN-1001"
	resp, err := svc.RegisterAsset(context.Background(), &RegisterAssetRequest{
		QrCode:       code,
		AssetName:    "Laptop-1",
		Category:     "LAPTOP",
		SerialNumber: &serial,
	}, actor)
	require.NoError(t, err)

	assert.Equal(t, "Laptop-1", resp.Name)
	assert.Equal(t, domainAsset.CategoryLaptop, resp.Category)
	assert.Equal(t, domainAsset.StatusActive, resp.Status)
	assert.Equal(t, code, resp.QrCode)
	require.NotNil(t, resp.RegisteredByID)
	assert.Equal(t, actor, *resp.RegisteredByID)

	var qrRow models.QrCodeModel
	require.NoError(t, store.DB.Where("code = ?", code).First(&qrRow).Error)
	assert.True(t, qrRow.IsAssigned)
	require.NotNil(t, qrRow.AssetID)
	assert.Equal(t, resp.ID, *qrRow.AssetID)

	var assetRow models.AssetModel
	require.NoError(t, store.DB.Where("id = ?", resp.ID).First(&assetRow).Error)
	assert.True(t, assetRow.IsQrGenerated)
	assert.False(t, assetRow.IsDeleted)
}

func TestRegisterAsset_UnknownCodeCreatesNothing(t *testing.T) {
	svc, store := newTestService(t)
	actor := uuid.New()

	_, err := svc.RegisterAsset(context.Background(), &RegisterAssetRequest{
		QrCode:    "QR-000000",
		AssetName: "Laptop-1",
		Category:  "LAPTOP",
	}, actor)
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeNotFound, appErrorCode(t, err))

	assert.Zero(t, countRows(t, store, &models.AssetModel{}))
}

func TestRegisterAsset_AssignedCodeConflicts(t *testing.T) {
	svc, store := newTestService(t)
	actor := uuid.New()

	generated, err := svc.GenerateCodes(context.Background(), &GenerateRequest{Count: 1}, actor)
	require.NoError(t, err)
	code := generated.Codes[0]

	_, err = svc.RegisterAsset(context.Background(), &RegisterAssetRequest{
		QrCode:    code,
		AssetName: "Laptop-1",
		Category:  "LAPTOP",
	}, actor)
	require.NoError(t, err)

	_, err = svc.RegisterAsset(context.Background(), &RegisterAssetRequest{
		QrCode:    code,
		AssetName: "Laptop-2",
		Category:  "LAPTOP",
	}, actor)
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeConflict, appErrorCode(t, err))

	// The failed attempt must not leave a second asset behind.
	assert.Equal(t, int64(1), countRows(t, store, &models.AssetModel{}))
}

func TestRegisterAsset_RejectsUnknownCategory(t *testing.T) {
	svc, _ := newTestService(t)
	actor := uuid.New()

	_, err := svc.RegisterAsset(context.Background(), &RegisterAssetRequest{
		QrCode:    "QR-123456",
		AssetName: "Thing",
		Category:  "FRIDGE",
	}, actor)
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeValidation, appErrorCode(t, err))
}

func TestVerifyCode_UnknownCode(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.VerifyCode(context.Background(), &VerifyQrRequest{Code: "QR-999999"})
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	assert.False(t, resp.AlreadyAssigned)
	assert.Nil(t, resp.Asset)
}

func TestVerifyCode_UnassignedCode(t *testing.T) {
	svc, _ := newTestService(t)
	actor := uuid.New()

	generated, err := svc.GenerateCodes(context.Background(), &GenerateRequest{Count: 1}, actor)
	require.NoError(t, err)
	code := generated.Codes[0]

	resp, err := svc.VerifyCode(context.Background(), &VerifyQrRequest{Code: code})
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.False(t, resp.AlreadyAssigned)
	require.NotNil(t, resp.QrID)
	assert.Equal(t, code, resp.QrCode)
	assert.Nil(t, resp.Asset)
}

func TestVerifyCode_AssignedCodeReturnsAsset(t *testing.T) {
	svc, _ := newTestService(t)
	actor := uuid.New()

	generated, err := svc.GenerateCodes(context.Background(), &GenerateRequest{Count: 1}, actor)
	require.NoError(t, err)
	code := generated.Codes[0]

	registered, err := svc.RegisterAsset(context.Background(), &RegisterAssetRequest{
		QrCode:    code,
		AssetName: "Camera-1",
		Category:  "CAMERA",
	}, actor)
	require.NoError(t, err)

	resp, err := svc.VerifyCode(context.Background(), &VerifyQrRequest{Code: code})
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.True(t, resp.AlreadyAssigned)
	require.NotNil(t, resp.Asset)
	assert.Equal(t, registered.ID, resp.Asset.ID)
	assert.Equal(t, "Camera-1", resp.Asset.Name)
}

func TestVerifyCode_DanglingAssetReportsNull(t *testing.T) {
	svc, store := newTestService(t)

	missing := uuid.New()
	row := models.QrCodeModel{
		ID:         uuid.New(),
		Code:       "QR-424242",
		IsAssigned: true,
		AssetID:    &missing,
	}
	require.NoError(t, store.DB.Create(&row).Error)

	resp, err := svc.VerifyCode(context.Background(), &VerifyQrRequest{Code: "QR-424242"})
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.True(t, resp.AlreadyAssigned)
	assert.Nil(t, resp.Asset)
}

func TestRegenerateCode_RetiresOldCodeWithoutReuse(t *testing.T) {
	svc, store := newTestService(t)
	actor := uuid.New()

	generated, err := svc.GenerateCodes(context.Background(), &GenerateRequest{Count: 1}, actor)
	require.NoError(t, err)
	oldCode := generated.Codes[0]

	registered, err := svc.RegisterAsset(context.Background(), &RegisterAssetRequest{
		QrCode:    oldCode,
		AssetName: "Tablet-1",
		Category:  "TABLET",
	}, actor)
	require.NoError(t, err)

	replacement, err := svc.RegenerateCode(context.Background(), registered.ID, actor)
	require.NoError(t, err)

	assert.NotEqual(t, oldCode, replacement.Code)
	assert.True(t, replacement.IsAssigned)
	require.NotNil(t, replacement.AssetID)
	assert.Equal(t, registered.ID, *replacement.AssetID)

	// The retired code survives unassigned so the string is never reissued.
	var oldRow models.QrCodeModel
	require.NoError(t, store.DB.Where("code = ?", oldCode).First(&oldRow).Error)
	assert.False(t, oldRow.IsAssigned)
	assert.Nil(t, oldRow.AssetID)

	assert.Equal(t, int64(2), countRows(t, store, &models.QrCodeModel{}))
}

func TestRegenerateCode_RepeatedRegenerationsAccumulateRetiredCodes(t *testing.T) {
	svc, store := newTestService(t)
	actor := uuid.New()

	generated, err := svc.GenerateCodes(context.Background(), &GenerateRequest{Count: 1}, actor)
	require.NoError(t, err)

	registered, err := svc.RegisterAsset(context.Background(), &RegisterAssetRequest{
		QrCode:    generated.Codes[0],
		AssetName: "Mobile-1",
		Category:  "MOBILE",
	}, actor)
	require.NoError(t, err)

	seen := map[string]struct{}{generated.Codes[0]: {}}
	for i := 0; i < 3; i++ {
		resp, err := svc.RegenerateCode(context.Background(), registered.ID, actor)
		require.NoError(t, err)
		_, dup := seen[resp.Code]
		assert.False(t, dup, "regeneration reissued %s", resp.Code)
		seen[resp.Code] = struct{}{}
	}

	assert.Equal(t, int64(4), countRows(t, store, &models.QrCodeModel{}))

	var assigned int64
	require.NoError(t, store.DB.Model(&models.QrCodeModel{}).
		Where("is_assigned = ?", true).
		Count(&assigned).Error)
	assert.Equal(t, int64(1), assigned)
}

func TestRegenerateCode_UnknownAsset(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RegenerateCode(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeNotFound, appErrorCode(t, err))
}

// TestCodeLifecycle walks the full path a code takes: minted in a batch,
// bound to a new asset, replaced, and finally left retired but unassigned.
func TestCodeLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	actor := uuid.New()
	ctx := context.Background()

	generated, err := svc.GenerateCodes(ctx, &GenerateRequest{Count: 5}, actor)
	require.NoError(t, err)
	require.Len(t, generated.Codes, 5)
	code := generated.Codes[0]

	registered, err := svc.RegisterAsset(ctx, &RegisterAssetRequest{
		QrCode:    code,
		AssetName: "Laptop-1",
		Category:  "LAPTOP",
	}, actor)
	require.NoError(t, err)

	lookup, err := svc.VerifyCode(ctx, &VerifyQrRequest{Code: code})
	require.NoError(t, err)
	assert.True(t, lookup.AlreadyAssigned)
	require.NotNil(t, lookup.Asset)
	assert.Equal(t, "Laptop-1", lookup.Asset.Name)

	replacement, err := svc.RegenerateCode(ctx, registered.ID, actor)
	require.NoError(t, err)

	// The old code scans as registration-ready again, not as the asset's code.
	oldLookup, err := svc.VerifyCode(ctx, &VerifyQrRequest{Code: code})
	require.NoError(t, err)
	assert.True(t, oldLookup.Valid)
	assert.False(t, oldLookup.AlreadyAssigned)
	assert.Nil(t, oldLookup.Asset)

	newLookup, err := svc.VerifyCode(ctx, &VerifyQrRequest{Code: replacement.Code})
	require.NoError(t, err)
	assert.True(t, newLookup.AlreadyAssigned)
	require.NotNil(t, newLookup.Asset)
	assert.Equal(t, registered.ID, newLookup.Asset.ID)
}
