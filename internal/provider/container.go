package provider

import (
	"context"
	"time"

	"github.com/checkout-next/internal/cache"
	"github.com/checkout-next/internal/cart"
	"github.com/checkout-next/internal/catalog"
	"github.com/checkout-next/internal/config"
	"github.com/checkout-next/internal/constants"
	"github.com/checkout-next/internal/logger"
	"github.com/checkout-next/internal/models"
	"github.com/checkout-next/internal/orders"
	"github.com/checkout-next/internal/pricing"
	"github.com/checkout-next/internal/repository"
	"github.com/checkout-next/internal/summary"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	ProductRepo  repository.ProductRepository
	DeliveryRepo repository.DeliveryOptionRepository
	SnapshotRepo repository.CartSnapshotRepository
	OrderRepo    repository.OrderRepository

	// Catalogs
	Products catalog.ProductCatalog
	Delivery catalog.DeliveryCatalog
	Dates    *catalog.DateCalculator

	// Checkout
	Carts     *cart.Manager
	Pricing   *pricing.Aggregator
	Presenter *summary.Presenter
	Orders    *orders.Client
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}
	c.initRepositories()
	c.initCheckout()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.DeliveryRepo = repository.NewDeliveryOptionRepository(db)
	c.SnapshotRepo = repository.NewCartSnapshotRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initCheckout() {
	checkoutCfg := c.Config.Checkout

	c.Products = catalog.NewProductCatalog(c.ProductRepo)
	c.Delivery = catalog.NewDeliveryCatalog(c.DeliveryRepo)
	c.Dates = catalog.NewDateCalculator(checkoutCfg.DeliveryDaysSkipWeekend)

	c.Carts = cart.NewManager(c.newSnapshotStorage(checkoutCfg.CartStorage), c.Delivery)
	c.Pricing = pricing.NewAggregator(c.Products, c.Delivery, checkoutCfg.TaxRate)
	c.Presenter = summary.NewPresenter(c.Products, c.Delivery, c.Dates, c.Pricing, checkoutCfg.TaxRate)

	timeout := time.Duration(checkoutCfg.OrderTimeoutSeconds) * time.Second
	c.Orders = orders.NewClient(checkoutCfg.OrderAPIURL, timeout, c.OrderRepo)
}

// newSnapshotStorage 按配置选择购物车快照存储后端。
// Redis 未启用时回退到数据库，保证购物车始终可持久化。
func (c *Container) newSnapshotStorage(backend string) cart.SnapshotStorage {
	if backend == constants.CartStorageRedis {
		if cache.Enabled() {
			return cart.NewRedisStorage()
		}
		logger.Warnw("cart_storage_redis_unavailable", "fallback", constants.CartStorageDatabase)
	}
	return cart.NewDatabaseStorage(c.SnapshotRepo)
}

// Preload 预加载配置声明的购物车存储键
func (c *Container) Preload(ctx context.Context) {
	keys := c.Config.Checkout.CartKeys
	if len(keys) == 0 {
		keys = []string{constants.DefaultCartKey}
	}
	c.Carts.Preload(ctx, keys)
	logger.Infow("cart_keys_preloaded", "count", len(keys))
}
