package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/v2/mongo/otelmongo"
	"go.uber.org/zap"
)

// Mongo is the repository-facing handle.
type Mongo interface {
	GetCollection(collection string) Collection
}

// Admin is used by infrastructure code such as migrations and health checks.
type Admin interface {
	Mongo
	Database() *mongodriver.Database
	Ping(ctx context.Context) error
	MigrationURI() (string, error)
}

type mongo struct {
	client   *mongodriver.Client
	database *mongodriver.Database
	conf     Config
	log      *zap.Logger
}

func newMongo(log *zap.Logger, conf Config) (*mongo, error) {
	if err := validateConfig(conf); err != nil {
		return nil, err
	}

	clientOptions := options.Client().
		ApplyURI(buildURI(conf)).
		SetMaxPoolSize(conf.MaxPoolSize).
		SetMinPoolSize(conf.MinPoolSize).
		SetMaxConnIdleTime(conf.MaxConnIdleTime).
		SetConnectTimeout(conf.ConnectTimeout).
		SetServerSelectionTimeout(conf.ServerSelectTimeout).
		SetMonitor(otelmongo.NewMonitor())

	// Connect does not perform I/O; the first ping happens in connect.
	client, err := mongodriver.Connect(clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	return &mongo{
		client:   client,
		database: client.Database(conf.Database),
		conf:     conf,
		log:      log,
	}, nil
}

// connect pings the server with exponential backoff until ConnectRetryMaxElapsed.
func (m *mongo) connect(ctx context.Context) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = m.conf.ConnectRetryMaxElapsed

	attempt := 0
	op := func() error {
		attempt++
		return m.Ping(ctx)
	}
	notify := func(err error, next time.Duration) {
		m.log.Warn("mongo is not reachable yet, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("next", next),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(policy, ctx), notify); err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}

	m.log.Info("connected to mongo",
		zap.String("database", m.conf.Database),
		zap.Uint64("max-pool-size", m.conf.MaxPoolSize),
		zap.Uint64("min-pool-size", m.conf.MinPoolSize),
		zap.Duration("query-timeout", m.conf.QueryTimeout),
	)
	return nil
}

func (m *mongo) Ping(ctx context.Context) error {
	c, cancel := context.WithTimeout(ctx, m.conf.ConnectTimeout)
	defer cancel()
	return m.client.Ping(c, readpref.Primary())
}

func buildURI(conf Config) string {
	if conf.ConnectionString != "" {
		return conf.ConnectionString
	}

	auth := ""
	if conf.Username != "" {
		auth = url.UserPassword(conf.Username, conf.Password).String() + "@"
	}

	uri := fmt.Sprintf("mongodb://%s%s:%d/%s", auth, conf.Host, conf.Port, conf.Database)

	var params []string
	if conf.ReplicaSet != "" {
		params = append(params, "replicaSet="+conf.ReplicaSet)
	}
	if conf.DirectConnection {
		params = append(params, "directConnection=true")
	}
	if len(params) > 0 {
		uri += "?" + strings.Join(params, "&")
	}

	return uri
}

// MigrationURI returns a golang-migrate mongodb URL pointing at the configured
// database with the migrations collection and advisory locking parameters.
func (m *mongo) MigrationURI() (string, error) {
	u, err := url.Parse(buildURI(m.conf))
	if err != nil {
		return "", fmt.Errorf("failed to parse mongo uri: %w", err)
	}

	u.Path = "/" + m.conf.Database

	q := u.Query()
	q.Set("x-migrations-collection", m.conf.Migrations.CollectionName)
	q.Set("x-advisory-locking", "true")
	q.Set("x-advisory-lock-timeout", fmt.Sprintf("%d", m.conf.Migrations.LockingTimeout))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// GetCollection returns a Collection bounded by the query timeout.
func (m *mongo) GetCollection(collection string) Collection {
	return newCollectionWrapper(m.database.Collection(collection), m.conf.QueryTimeout)
}

func (m *mongo) Database() *mongodriver.Database {
	return m.database
}

func (m *mongo) disconnect(ctx context.Context) error {
	c, cancel := context.WithTimeout(ctx, m.conf.ConnectTimeout)
	defer cancel()
	if err := m.client.Disconnect(c); err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}
	m.log.Info("disconnected from mongo")
	return nil
}
