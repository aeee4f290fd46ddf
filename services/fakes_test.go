package services

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

// In-memory repositories backing the scenario tests. Page listings order by
// id ascending like the mongo repositories do.

type memUsers struct{ rows map[primitive.ObjectID]models.User }

func newMemUsers() *memUsers { return &memUsers{rows: map[primitive.ObjectID]models.User{}} }

func (m *memUsers) Create(_ context.Context, user *models.User) error {
	for _, u := range m.rows {
		if u.Correo == user.Correo {
			return helpers.Conflict("el correo %s ya está registrado", user.Correo)
		}
	}
	user.ID = primitive.NewObjectID()
	if user.Restaurantes == nil {
		user.Restaurantes = []primitive.ObjectID{}
	}
	m.rows[user.ID] = *user
	return nil
}

func (m *memUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := m.rows[id]
	if !ok {
		return nil, helpers.NotFound("Usuario no encontrado")
	}
	u.Restaurantes = append([]primitive.ObjectID{}, u.Restaurantes...)
	return &u, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.rows {
		if u.Correo == email {
			return &u, nil
		}
	}
	return nil, helpers.NotFound("Usuario no encontrado")
}

func (m *memUsers) FindAll(ctx context.Context) ([]models.User, error) {
	return m.List(ctx, 0, 0)
}

func (m *memUsers) List(_ context.Context, skip, limit int64) ([]models.User, error) {
	out := make([]models.User, 0, len(m.rows))
	for _, u := range m.rows {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return window(out, skip, limit), nil
}

func (m *memUsers) Count(context.Context) (int64, error) { return int64(len(m.rows)), nil }

func (m *memUsers) Update(_ context.Context, user *models.User) error {
	if _, ok := m.rows[user.ID]; !ok {
		return helpers.NotFound("Usuario no encontrado")
	}
	m.rows[user.ID] = *user
	return nil
}

func (m *memUsers) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.rows[id]; !ok {
		return helpers.NotFound("Usuario no encontrado")
	}
	delete(m.rows, id)
	return nil
}

func (m *memUsers) AddRestaurant(_ context.Context, userID, restaurantID primitive.ObjectID) error {
	u, ok := m.rows[userID]
	if !ok {
		return helpers.NotFound("Usuario no encontrado")
	}
	if !containsID(u.Restaurantes, restaurantID) {
		u.Restaurantes = append(u.Restaurantes, restaurantID)
	}
	m.rows[userID] = u
	return nil
}

func (m *memUsers) RemoveRestaurant(_ context.Context, userID, restaurantID primitive.ObjectID) error {
	u, ok := m.rows[userID]
	if !ok {
		return helpers.NotFound("Usuario no encontrado")
	}
	u.Restaurantes = removeID(u.Restaurantes, restaurantID)
	m.rows[userID] = u
	return nil
}

type memRestaurants struct{ rows map[primitive.ObjectID]models.Restaurant }

func newMemRestaurants() *memRestaurants {
	return &memRestaurants{rows: map[primitive.ObjectID]models.Restaurant{}}
}

func (m *memRestaurants) Create(_ context.Context, r *models.Restaurant) error {
	r.ID = primitive.NewObjectID()
	if r.Categorias == nil {
		r.Categorias = []primitive.ObjectID{}
	}
	m.rows[r.ID] = *r
	return nil
}

func (m *memRestaurants) FindByID(_ context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, helpers.NotFound("Restaurante no encontrado")
	}
	r.Categorias = append([]primitive.ObjectID{}, r.Categorias...)
	return &r, nil
}

func (m *memRestaurants) filter(keep func(models.Restaurant) bool) []models.Restaurant {
	out := []models.Restaurant{}
	for _, r := range m.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out
}

func (m *memRestaurants) FindAll(context.Context) ([]models.Restaurant, error) {
	return m.filter(func(models.Restaurant) bool { return true }), nil
}

func (m *memRestaurants) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Restaurant, error) {
	return m.filter(func(r models.Restaurant) bool { return r.UserID == userID }), nil
}

func (m *memRestaurants) FindByName(_ context.Context, name string) ([]models.Restaurant, error) {
	name = strings.ToLower(name)
	return m.filter(func(r models.Restaurant) bool { return strings.Contains(strings.ToLower(r.Nombre), name) }), nil
}

func (m *memRestaurants) List(_ context.Context, skip, limit int64) ([]models.Restaurant, error) {
	return window(m.filter(func(models.Restaurant) bool { return true }), skip, limit), nil
}

func (m *memRestaurants) Count(context.Context) (int64, error) { return int64(len(m.rows)), nil }

func (m *memRestaurants) Update(_ context.Context, r *models.Restaurant) error {
	if _, ok := m.rows[r.ID]; !ok {
		return helpers.NotFound("Restaurante no encontrado")
	}
	m.rows[r.ID] = *r
	return nil
}

func (m *memRestaurants) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.rows[id]; !ok {
		return helpers.NotFound("Restaurante no encontrado")
	}
	delete(m.rows, id)
	return nil
}

func (m *memRestaurants) AddCategory(_ context.Context, restaurantID, categoryID primitive.ObjectID) error {
	r, ok := m.rows[restaurantID]
	if !ok {
		return helpers.NotFound("Restaurante no encontrado")
	}
	r.Categorias = append(removeID(r.Categorias, categoryID), categoryID)
	m.rows[restaurantID] = r
	return nil
}

func (m *memRestaurants) RemoveCategory(_ context.Context, restaurantID, categoryID primitive.ObjectID) error {
	r, ok := m.rows[restaurantID]
	if !ok {
		return helpers.NotFound("Restaurante no encontrado")
	}
	r.Categorias = removeID(r.Categorias, categoryID)
	m.rows[restaurantID] = r
	return nil
}

type memCategories struct{ rows map[primitive.ObjectID]models.Category }

func newMemCategories() *memCategories {
	return &memCategories{rows: map[primitive.ObjectID]models.Category{}}
}

func (m *memCategories) Create(_ context.Context, c *models.Category) error {
	c.ID = primitive.NewObjectID()
	m.rows[c.ID] = *c
	return nil
}

func (m *memCategories) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, helpers.NotFound("Categoría no encontrada")
	}
	return &c, nil
}

func (m *memCategories) FindByRestaurantAndName(_ context.Context, restaurantID primitive.ObjectID, name string) (*models.Category, error) {
	for _, c := range m.rows {
		if c.RestaurantID == restaurantID && c.Nombre == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memCategories) all(keep func(models.Category) bool) []models.Category {
	out := []models.Category{}
	for _, c := range m.rows {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out
}

func (m *memCategories) FindByRestaurant(_ context.Context, restaurantID primitive.ObjectID) ([]models.Category, error) {
	return m.all(func(c models.Category) bool { return c.RestaurantID == restaurantID }), nil
}

func (m *memCategories) FindAll(context.Context) ([]models.Category, error) {
	return m.all(func(models.Category) bool { return true }), nil
}

func (m *memCategories) List(_ context.Context, skip, limit int64) ([]models.Category, error) {
	return window(m.all(func(models.Category) bool { return true }), skip, limit), nil
}

func (m *memCategories) Count(context.Context) (int64, error) { return int64(len(m.rows)), nil }

func (m *memCategories) Update(_ context.Context, c *models.Category) error {
	if _, ok := m.rows[c.ID]; !ok {
		return helpers.NotFound("Categoría no encontrada")
	}
	m.rows[c.ID] = *c
	return nil
}

func (m *memCategories) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.rows[id]; !ok {
		return helpers.NotFound("Categoría no encontrada")
	}
	delete(m.rows, id)
	return nil
}

type memProducts struct{ rows map[primitive.ObjectID]models.Product }

func newMemProducts() *memProducts {
	return &memProducts{rows: map[primitive.ObjectID]models.Product{}}
}

func (m *memProducts) Create(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	m.rows[p.ID] = *p
	return nil
}

func (m *memProducts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, helpers.NotFound("Producto no encontrado")
	}
	return &p, nil
}

func (m *memProducts) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	out := []models.Product{}
	for _, id := range ids {
		if p, ok := m.rows[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) all(keep func(models.Product) bool) []models.Product {
	out := []models.Product{}
	for _, p := range m.rows {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out
}

func (m *memProducts) FindByCategory(_ context.Context, categoryID, restaurantID primitive.ObjectID) ([]models.Product, error) {
	return m.all(func(p models.Product) bool {
		return p.CategoriaID == categoryID && p.RestauranteID == restaurantID
	}), nil
}

func (m *memProducts) FindByRestaurant(_ context.Context, restaurantID primitive.ObjectID) ([]models.Product, error) {
	return m.all(func(p models.Product) bool { return p.RestauranteID == restaurantID }), nil
}

func (m *memProducts) List(_ context.Context, skip, limit int64) ([]models.Product, error) {
	return window(m.all(func(models.Product) bool { return true }), skip, limit), nil
}

func (m *memProducts) Count(context.Context) (int64, error) { return int64(len(m.rows)), nil }

func (m *memProducts) Update(_ context.Context, p *models.Product) error {
	if _, ok := m.rows[p.ID]; !ok {
		return helpers.NotFound("Producto no encontrado")
	}
	m.rows[p.ID] = *p
	return nil
}

func (m *memProducts) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.rows[id]; !ok {
		return helpers.NotFound("Producto no encontrado")
	}
	delete(m.rows, id)
	return nil
}

type memOrders struct {
	rows    map[primitive.ObjectID]models.Order
	updates int
}

func newMemOrders() *memOrders { return &memOrders{rows: map[primitive.ObjectID]models.Order{}} }

func (m *memOrders) Create(_ context.Context, o *models.Order) error {
	o.ID = primitive.NewObjectID()
	m.rows[o.ID] = *o
	return nil
}

func (m *memOrders) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	o, ok := m.rows[id]
	if !ok {
		return nil, helpers.NotFound("Orden no encontrada")
	}
	return &o, nil
}

func (m *memOrders) all(keep func(models.Order) bool) []models.Order {
	out := []models.Order{}
	for _, o := range m.rows {
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out
}

func (m *memOrders) FindAll(_ context.Context, scope models.OrderScope) ([]models.Order, error) {
	return m.all(inScope(scope)), nil
}

func (m *memOrders) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return m.all(func(o models.Order) bool { return o.ClienteID == userID }), nil
}

func (m *memOrders) FindByUserAndStatus(_ context.Context, userID primitive.ObjectID, status models.OrderStatus) ([]models.Order, error) {
	return m.all(func(o models.Order) bool { return o.ClienteID == userID && o.Estado == status }), nil
}

func (m *memOrders) FindByRestaurant(_ context.Context, restaurantID primitive.ObjectID) ([]models.Order, error) {
	return m.all(func(o models.Order) bool { return o.RestauranteID == restaurantID }), nil
}

func (m *memOrders) List(_ context.Context, scope models.OrderScope, skip, limit int64) ([]models.Order, error) {
	return window(m.all(inScope(scope)), skip, limit), nil
}

func (m *memOrders) Count(_ context.Context, scope models.OrderScope) (int64, error) {
	return int64(len(m.all(inScope(scope)))), nil
}

func inScope(scope models.OrderScope) func(models.Order) bool {
	return func(o models.Order) bool {
		return o.ClienteID == scope.ClienteID || containsID(scope.RestauranteIDs, o.RestauranteID)
	}
}

func (m *memOrders) Update(_ context.Context, o *models.Order) error {
	if _, ok := m.rows[o.ID]; !ok {
		return helpers.NotFound("Orden no encontrada")
	}
	m.updates++
	m.rows[o.ID] = *o
	return nil
}

func (m *memOrders) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.rows[id]; !ok {
		return helpers.NotFound("Orden no encontrada")
	}
	delete(m.rows, id)
	return nil
}

func window[T any](rows []T, skip, limit int64) []T {
	if skip >= int64(len(rows)) {
		return []T{}
	}
	rows = rows[skip:]
	if limit > 0 && limit < int64(len(rows)) {
		rows = rows[:limit]
	}
	return rows
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// world wires every service over one set of in-memory repositories.
type world struct {
	users       *memUsers
	restaurants *memRestaurants
	categories  *memCategories
	products    *memProducts
	orders      *memOrders

	auth          *AuthService
	userSvc       *UserService
	restaurantSvc *RestaurantService
	categorySvc   *CategoryService
	productSvc    *ProductService
	orderSvc      *OrderService
}

func newWorld() *world {
	w := &world{
		users:       newMemUsers(),
		restaurants: newMemRestaurants(),
		categories:  newMemCategories(),
		products:    newMemProducts(),
		orders:      newMemOrders(),
	}
	w.auth = NewAuthService(w.users, helpers.NewTokenMaker("test-secret", time.Hour))
	w.userSvc = NewUserService(w.users)
	w.restaurantSvc = NewRestaurantService(w.restaurants, w.users)
	w.categorySvc = NewCategoryService(w.categories, w.restaurants)
	w.productSvc = NewProductService(w.products, w.categories, w.restaurants)
	w.orderSvc = NewOrderService(w.orders, w.products, w.users, w.restaurants)
	return w
}

// principal creates a user directly in the store and returns its principal.
func (w *world) principal(name string) models.Principal {
	user := &models.User{Username: name, Correo: strings.ToLower(name) + "@example.com"}
	_ = w.users.Create(context.Background(), user)
	return models.Principal{ID: user.ID, Username: user.Username, Email: user.Correo}
}

func (w *world) restaurant(t *testing.T, owner models.Principal, name string) *models.Restaurant {
	t.Helper()
	r, err := w.restaurantSvc.AddRestaurant(context.Background(), owner, models.RestaurantInput{
		Nombre:    name,
		Correo:    strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@example.com",
		Telefono:  "555-0100",
		Direccion: "Av. Siempre Viva 742",
		City:      "Monterrey",
	})
	require.NoError(t, err)
	return r
}

func (w *world) category(t *testing.T, owner models.Principal, restaurant *models.Restaurant, name string) *models.Category {
	t.Helper()
	c, err := w.categorySvc.AddCategory(context.Background(), owner, models.CategoryInput{
		Nombre:       name,
		RestaurantID: restaurant.ID.Hex(),
	})
	require.NoError(t, err)
	return c
}

func (w *world) product(t *testing.T, owner models.Principal, category *models.Category, name string, price float64) *models.Product {
	t.Helper()
	p, err := w.productSvc.AddProduct(context.Background(), owner, models.ProductInput{
		Nombre:        name,
		Precio:        &price,
		CategoriaID:   category.ID.Hex(),
		RestauranteID: category.RestaurantID.Hex(),
	})
	require.NoError(t, err)
	return p
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
