//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"booking-widget/cmd/bootstrap"
	"booking-widget/cmd/bootstrap/components"
	"booking-widget/internal/pkg/clock"
	"booking-widget/internal/pkg/config"
	"booking-widget/tests/common/backendtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*backendtest.Server, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	backend := backendtest.NewServer(t)

	router, cfg, app := buildE2EApp(backend.URL())
	require.NotNil(t, router, "Routerのセットアップに失敗")

	// Register cleanup for the fx app
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	slog.Info("E2E環境の準備が完了しました", "backend_url", backend.URL())

	return backend, router, cfg
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(backendURL string) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(backendURL)
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		fx.Provide(clock.NewRealClock),
		bootstrap.JWTModule,
		bootstrap.SessionModule,
		components.InfraModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fxアプリケーションの起動に失敗しました")
	}

	return router, cfg, app
}

func createTestConfig(backendURL string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.ReservationAPI.BaseURL = backendURL
	testConfig.ReservationAPI.Timeout = 5 * time.Second
	return testConfig
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Backend *backendtest.Server // 各テストで応答を差し替える偽バックエンド
	Config  config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	backend, router, cfg := setupE2EEnvironment(t)
	s.Backend = backend
	s.Router = router
	s.Config = cfg
	require.NotNil(t, backend, "バックエンドのセットアップに失敗")
	require.NotEmpty(t, s.Config, "Configの取得に失敗")
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupTest() {
	// No additional setup needed for tests
	// Each test registers the backend responses it relies on
}
