package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Client struct
type Client struct {
	*goredis.Client
}

// ConnectToRedis func - Connects and pings the server once
func ConnectToRedis(addr, password string, db int) (*Client, error) {
	if addr == "" {
		return nil, errors.New("cannot estabished the connection: redis addr is empty")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Error(err)
		_ = client.Close()
		return nil, err
	}

	logrus.Infof("Connected to redis at %s db %d", addr, db)
	return &Client{Client: client}, nil
}

// DisconnectRedis func
func DisconnectRedis(c *Client) {
	if c == nil || c.Client == nil {
		return
	}
	if err := c.Close(); err != nil {
		logrus.Error(err)
	}
	logrus.Println("Connected with redis has closed")
}
