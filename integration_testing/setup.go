//go:build integration

package integration_testing

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/2beens/fitcoach/internal"
	"github.com/2beens/fitcoach/internal/config"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	rateLimitAllowedPerMin = 5
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	RedisClient *redis.Client
	backend     *httptest.Server
	dockerPool  *dockertest.Pool
	server      *internal.Server
	teardown    []func()
}

func newSuite(ctx context.Context, backendHandler http.HandlerFunc) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}
	suite.dockerPool.MaxWait = time.Minute

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup(ctx)
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	suite.backend = httptest.NewServer(backendHandler)
	suite.teardown = append(suite.teardown, suite.backend.Close)

	cfg := getTestConfig(suite.backend.URL, redisPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             "test-version-info",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(cfg.Host, cfg.Port)

	if err := suite.dockerPool.Retry(func() error {
		resp, err := http.Get(serverEndpoint + "/health")
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("server not healthy yet: %d", resp.StatusCode)
		}
		return nil
	}); err != nil {
		suite.cleanup()
		log.Fatalf("server not ready: %s", err)
	}

	return suite
}

func (s *Suite) cleanup() {
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	if s.RedisClient != nil {
		s.RedisClient.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

func getTestConfig(backendURL, redisPort string) *config.Config {
	return &config.Config{
		Environment:            "dev",
		Host:                   serverHost,
		Port:                   serverPort,
		PrometheusMetricsHost:  "localhost",
		PrometheusMetricsPort:  "2113",
		BackendURL:             backendURL,
		BackendTimeout:         config.Duration{Duration: 5 * time.Second},
		RedisHost:              "localhost",
		RedisPort:              redisPort,
		SyntheticSeed:          config.DefaultSyntheticSeed,
		WeeklyCacheTTL:         config.Duration{Duration: time.Minute},
		AllowedOrigins:         []string{"http://localhost:8080"},
		RateLimitAllowedPerMin: rateLimitAllowedPerMin,
	}
}

func (s *Suite) redisSetup(ctx context.Context) (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "fitcoach-redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	s.RedisClient = redis.NewClient(&redis.Options{
		Addr: "localhost:" + redisPort,
	})
	if err := s.dockerPool.Retry(func() error {
		return s.RedisClient.Ping(ctx).Err()
	}); err != nil {
		return "", fmt.Errorf("ping redis: %s", err)
	}

	return redisPort, nil
}
