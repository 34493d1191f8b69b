// Package storage реализует хранилище данных на основе PostgreSQL
// для каталога причальных стоянок. Предоставляет методы работы
// с пользователями, причалами, промокодами, настройками платформы
// и бронированиями.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
)

// ErrNotFound возвращается, когда запрошенная запись отсутствует в базе данных.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists возвращается при нарушении ограничения уникальности.
var ErrAlreadyExists = errors.New("already exists")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с данными каталога.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'mooring_locations'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table mooring_locations missing or query error: %w", err)
	}
	return nil
}

// ===== USER METHODS =====

// RegisterUser сохраняет нового пользователя в базу данных и возвращает его UID.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (email, name, password_hash, role, subscription_status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.Name, user.PasswordHash, user.Role,
		user.SubscriptionStatus).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

const userColumns = `uid, email, name, password_hash, subscription_status,
			  subscription_expires_at, billing_customer_id, billing_subscription_id,
			  role, created_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var user models.User
	if err := row.Scan(&user.UID, &user.Email, &user.Name, &user.PasswordHash,
		&user.SubscriptionStatus, &user.SubscriptionExpiresAt, &user.BillingCustomerID,
		&user.BillingSubscriptionID, &user.Role, &user.CreatedAt); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail возвращает пользователя по адресу электронной почты.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// GetUserByUID возвращает пользователя по его UID.
func (s *Storage) GetUserByUID(ctx context.Context, uid string) (*models.User, error) {
	const op = "storage.GetUserByUID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1`
	user, err := scanUser(s.DB.QueryRowContext(ctx, query, uid))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// GetUserByBillingCustomerID возвращает пользователя по идентификатору клиента
// у платёжного провайдера. Используется при обработке вебхуков.
func (s *Storage) GetUserByBillingCustomerID(ctx context.Context, customerID string) (*models.User, error) {
	const op = "storage.GetUserByBillingCustomerID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE billing_customer_id = $1`
	user, err := scanUser(s.DB.QueryRowContext(ctx, query, customerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// UpdateUserSubscription обновляет статус подписки и дату её окончания,
// возвращает количество изменённых строк.
func (s *Storage) UpdateUserSubscription(ctx context.Context, uid string, status string, expiresAt *time.Time) (int, error) {
	const op = "storage.UpdateUserSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET subscription_status = $1, subscription_expires_at = $2
			  WHERE uid = $3`
	result, err := s.DB.ExecContext(ctx, query, status, expiresAt, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// UpdateUserBillingRefs сохраняет внешние ссылки на объекты платёжного провайдера.
func (s *Storage) UpdateUserBillingRefs(ctx context.Context, uid string, customerID, subscriptionID *string) (int, error) {
	const op = "storage.UpdateUserBillingRefs"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET billing_customer_id = $1, billing_subscription_id = $2
			  WHERE uid = $3`
	result, err := s.DB.ExecContext(ctx, query, customerID, subscriptionID, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListUsers возвращает список всех пользователей с пагинацией.
func (s *Storage) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  ORDER BY created_at
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FindPremiumExpiringTomorrow находит premium-пользователей, чья подписка
// истекает завтра. Используется планировщиком напоминаний о продлении.
func (s *Storage) FindPremiumExpiringTomorrow(ctx context.Context) ([]*models.RenewalReminder, error) {
	const op = "storage.FindPremiumExpiringTomorrow"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT email, name, subscription_expires_at
			  FROM users
			  WHERE subscription_status = 'premium'
			    AND subscription_expires_at::DATE = CURRENT_DATE + INTERVAL '1 day'`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.RenewalReminder
	for rows.Next() {
		var item models.RenewalReminder
		if err := rows.Scan(&item.Email, &item.Name, &item.ExpiresAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ===== MOORING LOCATION METHODS =====

const locationColumns = `id, name, address, county, region, type, latitude, longitude,
			  capacity, depth, has_fuel, has_water, has_electricity, has_waste_disposal,
			  has_showers, has_restaurant, phone, email, website, description`

func scanLocation(row interface{ Scan(...any) error }) (*models.MooringLocation, error) {
	var loc models.MooringLocation
	if err := row.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.County, &loc.Region,
		&loc.Type, &loc.Latitude, &loc.Longitude, &loc.Capacity, &loc.Depth,
		&loc.HasFuel, &loc.HasWater, &loc.HasElectricity, &loc.HasWasteDisposal,
		&loc.HasShowers, &loc.HasRestaurant, &loc.Phone, &loc.Email,
		&loc.Website, &loc.Description); err != nil {
		return nil, err
	}
	return &loc, nil
}

// CreateLocation вставляет новый причал и возвращает его ID.
func (s *Storage) CreateLocation(ctx context.Context, loc models.MooringLocation) (int, error) {
	const op = "storage.CreateLocation"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO mooring_locations (name, address, county, region, type,
			      latitude, longitude, capacity, depth, has_fuel, has_water,
			      has_electricity, has_waste_disposal, has_showers, has_restaurant,
			      phone, email, website, description)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		loc.Name, loc.Address, loc.County, loc.Region, loc.Type,
		loc.Latitude, loc.Longitude, loc.Capacity, loc.Depth,
		loc.HasFuel, loc.HasWater, loc.HasElectricity, loc.HasWasteDisposal,
		loc.HasShowers, loc.HasRestaurant,
		loc.Phone, loc.Email, loc.Website, loc.Description).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListLocations возвращает список всех причалов, упорядоченный по названию.
func (s *Storage) ListLocations(ctx context.Context) ([]*models.MooringLocation, error) {
	const op = "storage.ListLocations"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + locationColumns + `
			  FROM mooring_locations
			  ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.MooringLocation
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, loc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetLocationByID возвращает причал по его ID.
func (s *Storage) GetLocationByID(ctx context.Context, id int) (*models.MooringLocation, error) {
	const op = "storage.GetLocationByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + locationColumns + ` FROM mooring_locations WHERE id = $1`
	loc, err := scanLocation(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return loc, nil
}

// SearchLocations ищет причалы по подстроке в названии, адресе, графстве или регионе.
func (s *Storage) SearchLocations(ctx context.Context, q string) ([]*models.MooringLocation, error) {
	const op = "storage.SearchLocations"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	pattern := "%" + q + "%"
	query := `SELECT ` + locationColumns + `
			  FROM mooring_locations
			  WHERE name ILIKE $1 OR address ILIKE $1 OR county ILIKE $1 OR region ILIKE $1
			  ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query, pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.MooringLocation
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, loc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ===== PROMO CODE METHODS =====

const promoColumns = `id, code, description, discount_type, discount_value,
			  max_uses, current_uses, expires_at, is_active, created_at`

func scanPromo(row interface{ Scan(...any) error }) (*models.PromoCode, error) {
	var promo models.PromoCode
	if err := row.Scan(&promo.ID, &promo.Code, &promo.Description, &promo.DiscountType,
		&promo.DiscountValue, &promo.MaxUses, &promo.CurrentUses, &promo.ExpiresAt,
		&promo.IsActive, &promo.CreatedAt); err != nil {
		return nil, err
	}
	return &promo, nil
}

// CreatePromoCode вставляет новый промокод и возвращает его ID.
// Код сохраняется в верхнем регистре.
func (s *Storage) CreatePromoCode(ctx context.Context, promo models.PromoCode) (int, error) {
	const op = "storage.CreatePromoCode"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO promo_codes (code, description, discount_type, discount_value,
			      max_uses, expires_at, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		strings.ToUpper(promo.Code), promo.Description, promo.DiscountType,
		promo.DiscountValue, promo.MaxUses, promo.ExpiresAt, promo.IsActive).Scan(&newID)
	if isUniqueViolation(err) {
		return 0, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetPromoCodeByCode возвращает промокод по его коду без учёта регистра.
func (s *Storage) GetPromoCodeByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	const op = "storage.GetPromoCodeByCode"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + promoColumns + ` FROM promo_codes WHERE code = $1`
	promo, err := scanPromo(s.DB.QueryRowContext(ctx, query, strings.ToUpper(code)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return promo, nil
}

// ListPromoCodes возвращает список всех промокодов.
func (s *Storage) ListPromoCodes(ctx context.Context) ([]*models.PromoCode, error) {
	const op = "storage.ListPromoCodes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + promoColumns + ` FROM promo_codes ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.PromoCode
	for rows.Next() {
		promo, err := scanPromo(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, promo)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// IncrementPromoCodeUses атомарно увеличивает счётчик использований промокода,
// если лимит ещё не исчерпан. Возвращает false, если лимит достигнут
// конкурентным погашением.
func (s *Storage) IncrementPromoCodeUses(ctx context.Context, id int) (bool, error) {
	const op = "storage.IncrementPromoCodeUses"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE promo_codes
			  SET current_uses = current_uses + 1
			  WHERE id = $1
			    AND (max_uses IS NULL OR current_uses < max_uses)`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected > 0, nil
}

// DeactivatePromoCode деактивирует промокод, возвращает количество изменённых строк.
func (s *Storage) DeactivatePromoCode(ctx context.Context, id int) (int, error) {
	const op = "storage.DeactivatePromoCode"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE promo_codes SET is_active = false WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ===== PLATFORM SETTINGS METHODS =====

// GetSetting возвращает настройку платформы по ключу.
func (s *Storage) GetSetting(ctx context.Context, key string) (*models.PlatformSetting, error) {
	const op = "storage.GetSetting"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT key, value, description, updated_at FROM platform_settings WHERE key = $1`
	var setting models.PlatformSetting
	err := s.DB.QueryRowContext(ctx, query, key).Scan(
		&setting.Key, &setting.Value, &setting.Description, &setting.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &setting, nil
}

// UpsertSetting сохраняет настройку платформы, обновляя существующую запись по ключу.
func (s *Storage) UpsertSetting(ctx context.Context, setting models.PlatformSetting) error {
	const op = "storage.UpsertSetting"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO platform_settings (key, value, description, updated_at)
			  VALUES ($1, $2, $3, now())
			  ON CONFLICT (key) DO UPDATE
			  SET value = EXCLUDED.value, description = EXCLUDED.description, updated_at = now()`
	if _, err := s.DB.ExecContext(ctx, query, setting.Key, setting.Value, setting.Description); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListSettings возвращает все настройки платформы.
func (s *Storage) ListSettings(ctx context.Context) ([]*models.PlatformSetting, error) {
	const op = "storage.ListSettings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT key, value, description, updated_at FROM platform_settings ORDER BY key`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.PlatformSetting
	for rows.Next() {
		var item models.PlatformSetting
		if err := rows.Scan(&item.Key, &item.Value, &item.Description, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ===== BOOKING METHODS =====

const bookingColumns = `id, mooring_location_id, customer_name, customer_email,
			  customer_phone, boat_name, boat_length, check_in_date, check_out_date,
			  number_of_nights, total_price, special_requests, status, created_at`

func scanBooking(row interface{ Scan(...any) error }) (*models.Booking, error) {
	var booking models.Booking
	if err := row.Scan(&booking.ID, &booking.MooringLocationID, &booking.CustomerName,
		&booking.CustomerEmail, &booking.CustomerPhone, &booking.BoatName,
		&booking.BoatLength, &booking.CheckInDate, &booking.CheckOutDate,
		&booking.NumberOfNights, &booking.TotalPrice, &booking.SpecialRequests,
		&booking.Status, &booking.CreatedAt); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateBooking вставляет новое бронирование и возвращает его ID.
func (s *Storage) CreateBooking(ctx context.Context, booking models.Booking) (int, error) {
	const op = "storage.CreateBooking"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO bookings (mooring_location_id, customer_name, customer_email,
			      customer_phone, boat_name, boat_length, check_in_date, check_out_date,
			      number_of_nights, total_price, special_requests, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		booking.MooringLocationID, booking.CustomerName, booking.CustomerEmail,
		booking.CustomerPhone, booking.BoatName, booking.BoatLength,
		booking.CheckInDate, booking.CheckOutDate, booking.NumberOfNights,
		booking.TotalPrice, booking.SpecialRequests, booking.Status).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadBooking возвращает бронирование по его ID.
func (s *Storage) ReadBooking(ctx context.Context, id int) (*models.Booking, error) {
	const op = "storage.ReadBooking"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	booking, err := scanBooking(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return booking, nil
}

// ListBookings возвращает список всех бронирований с пагинацией.
func (s *Storage) ListBookings(ctx context.Context, limit, offset int) ([]*models.Booking, error) {
	const op = "storage.ListBookings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, booking)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListBookingsByLocation возвращает бронирования конкретного причала.
func (s *Storage) ListBookingsByLocation(ctx context.Context, locationID int) ([]*models.Booking, error) {
	const op = "storage.ListBookingsByLocation"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE mooring_location_id = $1
			  ORDER BY check_in_date`
	rows, err := s.DB.QueryContext(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, booking)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateBookingStatus обновляет статус бронирования, возвращает количество изменённых строк.
func (s *Storage) UpdateBookingStatus(ctx context.Context, id int, status string) (int, error) {
	const op = "storage.UpdateBookingStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE bookings SET status = $1 WHERE id = $2`
	result, err := s.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
