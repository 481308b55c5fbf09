package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-phone-auth/internal/config"
	"github.com/MKhiriev/go-phone-auth/internal/logger"
	"github.com/MKhiriev/go-phone-auth/internal/store"
	"github.com/MKhiriev/go-phone-auth/internal/utils"
	"github.com/MKhiriev/go-phone-auth/models"
)

// dummyPassword is hashed once and compared against when a login names an
// unknown phone, so both failure paths cost one bcrypt comparison.
const dummyPassword = "go-phone-auth/unknown-user"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher for
// one-way password storage.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes passwords at registration and compares them at login.
	hasher PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for token issue and verification.
	now func() time.Time

	dummyHashOnce sync.Once
	dummyHash     string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and PasswordHasher and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	tokenDuration := cfg.TokenDuration
	if tokenDuration <= 0 {
		tokenDuration = config.DefaultTokenDuration
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  tokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The password is hashed and the user is inserted in a single statement.
// There is deliberately no lookup beforehand: the unique constraint on the
// phone column decides, so concurrent registrations of one phone cannot
// both succeed.
//
// Returns the persisted user (with a server-assigned UserID and no password)
// or:
//   - an error wrapping ErrInvalidDataProvided if the password cannot be hashed
//     (over 72 bytes);
//   - an error wrapping store.ErrPhoneAlreadyExists if the phone is taken;
//   - any other wrapped storage error.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("phone_fp", utils.Fingerprint(creds.Phone, a.tokenSignKey)).Logger()

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	user := creds.User()
	user.Password = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrPhoneAlreadyExists) {
			log.Info().Msg("phone is already registered")
		} else {
			log.Err(err).Msg("user creation ended with error")
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	registeredUser.Password = ""

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown phone and a wrong password both return ErrInvalidCredentials,
// and both paths perform one bcrypt comparison.
//
// Returns the authenticated user record without its password hash or:
//   - ErrInvalidCredentials as described above;
//   - a wrapped storage or hashing error for anything unexpected.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("phone_fp", utils.Fingerprint(creds.Phone, a.tokenSignKey)).Logger()

	foundUser, err := a.userRepository.FindUserByPhone(ctx, creds.Phone)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			_ = a.hasher.Compare(a.unknownUserHash(), creds.Password)
			log.Info().Msg("login with unknown phone")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by phone failed")
		return models.User{}, fmt.Errorf("user search by phone failed: %w", err)
	}

	if err = a.hasher.Compare(foundUser.Password, creds.Password); err != nil {
		if errors.Is(err, ErrPasswordMismatch) {
			log.Info().Int64("user_id", foundUser.UserID).Msg("wrong password")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("password comparison failed")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}

	foundUser.Password = ""
	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies a raw JWT string against the current time and returns
// its claims. The error is one of ErrTokenIsExpired, ErrTokenIsMalformed,
// ErrTokenSignatureInvalid or ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.VerifyJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err == nil {
		return claims, nil
	}

	logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")

	switch {
	case errors.Is(err, utils.ErrTokenExpired):
		return models.Claims{}, ErrTokenIsExpired
	case errors.Is(err, utils.ErrTokenMalformed):
		return models.Claims{}, ErrTokenIsMalformed
	case errors.Is(err, utils.ErrTokenSignatureInvalid):
		return models.Claims{}, ErrTokenSignatureInvalid
	default:
		return models.Claims{}, ErrTokenIsExpiredOrInvalid
	}
}

func (a *authService) unknownUserHash() string {
	a.dummyHashOnce.Do(func() {
		a.dummyHash, _ = a.hasher.Hash(dummyPassword)
	})
	return a.dummyHash
}
