package warehouse

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/rl1809/stock-cache/internal/adapter/warehouse/pb"
)

// GRPCClient talks to the warehouse-of-record over gRPC.
type GRPCClient struct {
	client pb.WarehouseClient
}

func NewGRPCClient(conn grpc.ClientConnInterface) *GRPCClient {
	return &GRPCClient{client: pb.NewWarehouseClient(conn)}
}

func (c *GRPCClient) GetBaselineStock(ctx context.Context, productID string) (int64, error) {
	resp, err := c.client.GetBaselineStock(ctx, &pb.BaselineRequest{ProductId: productID})
	if err != nil {
		return 0, fmt.Errorf("warehouse baseline: %w", err)
	}
	return resp.GetStock(), nil
}

func (c *GRPCClient) PushStock(ctx context.Context, productID string, stock int64) error {
	_, err := c.client.PushStock(ctx, &pb.PushRequest{ProductId: productID, Stock: stock})
	if err != nil {
		return fmt.Errorf("warehouse push: %w", err)
	}
	return nil
}
