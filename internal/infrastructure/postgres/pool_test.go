package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Sales-api/pkg/config"
)

func TestNewPoolConfig_ConservaHostParaTLS(t *testing.T) {
	cfg := config.DBConfig{DatabaseURL: "postgres://u:p@localhost:5432/sales?sslmode=verify-full", MaxConns: 7}

	pc, err := newPoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "localhost", pc.ConnConfig.Host, "el host no se reemplaza por una IP")
	require.NotNil(t, pc.ConnConfig.TLSConfig)
	assert.Equal(t, "localhost", pc.ConnConfig.TLSConfig.ServerName)
	assert.Equal(t, int32(7), pc.MaxConns)
	assert.NotNil(t, pc.AfterConnect)
}

func TestNewPoolConfig_DesdeCamposDB(t *testing.T) {
	cfg := config.DBConfig{Host: "db.internal", Port: 6543, User: "sales", Password: "p@ss", DBName: "sales", SSLMode: "disable"}

	pc, err := newPoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", pc.ConnConfig.Host)
	assert.Equal(t, uint16(6543), pc.ConnConfig.Port)
	assert.Equal(t, "p@ss", pc.ConnConfig.Password)
	assert.Equal(t, int32(defaultMaxConns), pc.MaxConns)
}
