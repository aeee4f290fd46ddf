package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

type OrderService struct {
	orders      OrderRepository
	products    ProductRepository
	users       UserRepository
	restaurants RestaurantRepository
	now         func() time.Time
}

func NewOrderService(orders OrderRepository, products ProductRepository, users UserRepository, restaurants RestaurantRepository) *OrderService {
	return &OrderService{
		orders:      orders,
		products:    products,
		users:       users,
		restaurants: restaurants,
		now:         time.Now,
	}
}

// AddOrder places an order for p. Every product id must resolve to a product
// of the restaurant; the order embeds copies of those products and its total
// is their price sum at this moment.
func (s *OrderService) AddOrder(ctx context.Context, p models.Principal, input models.OrderInput) (*models.Order, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}
	input.Normalize()
	if err := helpers.ValidateStruct(&input); err != nil {
		return nil, err
	}
	restaurantID, err := helpers.ParseID(input.RestauranteID, "restauranteId")
	if err != nil {
		return nil, err
	}
	productIDs, err := helpers.ParseIDs(input.ProductsIDs, "productsIds")
	if err != nil {
		return nil, err
	}
	if _, err := s.restaurants.FindByID(ctx, restaurantID); err != nil {
		return nil, err
	}
	products, err := s.resolveProducts(ctx, productIDs, restaurantID)
	if err != nil {
		return nil, err
	}
	client, err := s.users.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	status := input.Estado
	if status == "" {
		status = models.OrderPending
	}
	order := &models.Order{
		OrderID:          uuid.NewString(),
		ClienteID:        client.ID,
		Cliente:          client.Username,
		RestauranteID:    restaurantID,
		Productos:        products,
		Total:            orderTotal(products),
		Estado:           status,
		Notas:            input.Notas,
		FechaHoraEntrega: input.FechaHoraEntrega,
		FechaOrden:       s.now().UTC(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	zap.S().Infow("order created", "order_id", order.OrderID, "restaurant_id", restaurantID.Hex(), "total", order.Total)
	return order, nil
}

// GetOrderByID is open to the client who placed the order and the owner of
// its restaurant.
func (s *OrderService) GetOrderByID(ctx context.Context, p models.Principal, id string) (*models.Order, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) loadOrder(ctx context.Context, id string) (*models.Order, error) {
	orderID, err := helpers.ParseID(id, "orderId")
	if err != nil {
		return nil, err
	}
	return s.orders.FindByID(ctx, orderID)
}

// UpdateOrder rejects any change to an order in a terminal state before
// anything is written. Status changes must follow the order lifecycle.
func (s *OrderService) UpdateOrder(ctx context.Context, p models.Principal, id string, patch models.OrderPatch) (*models.Order, error) {
	patch.Normalize()
	if err := helpers.ValidateStruct(&patch); err != nil {
		return nil, err
	}
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, order); err != nil {
		return nil, err
	}
	if order.Estado.IsTerminal() {
		return nil, helpers.Conflict("No se pueden modificar órdenes en estado %s", order.Estado)
	}
	if patch.Estado != nil && !order.Estado.CanTransitionTo(*patch.Estado) {
		return nil, helpers.Conflict("Transición de estado inválida: %s -> %s", order.Estado, *patch.Estado)
	}

	if patch.Estado != nil {
		order.Estado = *patch.Estado
	}
	if patch.Notas != nil {
		order.Notas = *patch.Notas
	}
	if patch.FechaHoraEntrega != nil {
		order.FechaHoraEntrega = patch.FechaHoraEntrega
	}
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, p models.Principal, id string) error {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, p, order); err != nil {
		return err
	}
	return s.orders.Delete(ctx, order.ID)
}

// GetAllOrders lists the orders p placed plus those received by p's
// restaurants.
func (s *OrderService) GetAllOrders(ctx context.Context, p models.Principal) ([]models.Order, error) {
	scope, err := s.scopeFor(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.orders.FindAll(ctx, scope)
}

func (s *OrderService) GetOrdersByUser(ctx context.Context, p models.Principal, userID string) ([]models.Order, error) {
	id, err := helpers.ParseID(userID, "userId")
	if err != nil {
		return nil, err
	}
	if err := canManageUser(p, id); err != nil {
		return nil, err
	}
	return s.orders.FindByUser(ctx, id)
}

func (s *OrderService) GetCompletedOrdersByUser(ctx context.Context, p models.Principal, userID string) ([]models.Order, error) {
	id, err := helpers.ParseID(userID, "userId")
	if err != nil {
		return nil, err
	}
	if err := canManageUser(p, id); err != nil {
		return nil, err
	}
	return s.orders.FindByUserAndStatus(ctx, id, models.OrderCompleted)
}

func (s *OrderService) GetOrdersByRestaurant(ctx context.Context, p models.Principal, restaurantID string) ([]models.Order, error) {
	id, err := helpers.ParseID(restaurantID, "restaurantId")
	if err != nil {
		return nil, err
	}
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canManageRestaurant(p, restaurant); err != nil {
		return nil, err
	}
	return s.orders.FindByRestaurant(ctx, id)
}

func (s *OrderService) GetOrdersPage(ctx context.Context, p models.Principal, page, limit int64) (*models.OrderPage, error) {
	scope, err := s.scopeFor(ctx, p)
	if err != nil {
		return nil, err
	}
	page, limit = helpers.NormalizePage(page, limit)
	orders, err := s.orders.List(ctx, scope, helpers.Skip(page, limit), limit)
	if err != nil {
		return nil, err
	}
	total, err := s.orders.Count(ctx, scope)
	if err != nil {
		return nil, err
	}
	return &models.OrderPage{
		Total:       total,
		Orders:      orders,
		CurrentPage: page,
		TotalPages:  helpers.TotalPages(total, limit),
	}, nil
}

// resolveProducts returns one snapshot per requested id, in request order.
// A repeated id yields a repeated snapshot.
func (s *OrderService) resolveProducts(ctx context.Context, ids []primitive.ObjectID, restaurantID primitive.ObjectID) ([]models.Product, error) {
	unique := make([]primitive.ObjectID, 0, len(ids))
	seen := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	found, err := s.products.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.Product, len(found))
	for _, product := range found {
		byID[product.ID] = product
	}
	if len(byID) != len(unique) {
		return nil, helpers.NotFound("Algunos productos no fueron encontrados")
	}

	snapshots := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		product := byID[id]
		if product.RestauranteID != restaurantID {
			return nil, helpers.Validation("el producto %s no pertenece al restaurante", product.Nombre)
		}
		if product.Imagenes != nil {
			product.Imagenes = append([]string(nil), product.Imagenes...)
		}
		snapshots = append(snapshots, product)
	}
	return snapshots, nil
}

func (s *OrderService) scopeFor(ctx context.Context, p models.Principal) (models.OrderScope, error) {
	if err := requireAuthenticated(p); err != nil {
		return models.OrderScope{}, err
	}
	owned, err := s.restaurants.FindByUser(ctx, p.ID)
	if err != nil {
		return models.OrderScope{}, err
	}
	scope := models.OrderScope{ClienteID: p.ID}
	for _, restaurant := range owned {
		scope.RestauranteIDs = append(scope.RestauranteIDs, restaurant.ID)
	}
	return scope, nil
}

func (s *OrderService) authorize(ctx context.Context, p models.Principal, order *models.Order) error {
	restaurant, err := s.restaurants.FindByID(ctx, order.RestauranteID)
	if err != nil && !helpers.IsNotFound(err) {
		return err
	}
	return canManageOrder(p, order, restaurant)
}

func orderTotal(products []models.Product) float64 {
	var total float64
	for _, product := range products {
		total += product.Precio
	}
	return total
}
