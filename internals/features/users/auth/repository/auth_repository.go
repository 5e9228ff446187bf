package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "campushub_backend/internals/features/users/auth/model"
	userModel "campushub_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func FindUserByEmailOrName(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_email = ? OR user_name = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGitHubID(db *gorm.DB, githubID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_github_id = ?", githubID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, token *authModel.RefreshTokenModel) error {
	return db.Create(token).Error
}

// FindActiveRefreshTokenByHash matches the HMAC of the presented token and
// skips revoked or expired rows.
func FindActiveRefreshTokenByHash(db *gorm.DB, hash []byte) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.
		Where("refresh_token_hash = ?", hash).
		Where("refresh_token_revoked_at IS NULL").
		Where("refresh_token_expires_at > ?", time.Now()).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func RevokeRefreshToken(db *gorm.DB, id uuid.UUID) error {
	now := time.Now()
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("refresh_token_id = ?", id).
		Update("refresh_token_revoked_at", now).Error
}

func RevokeAllRefreshTokensForUser(db *gorm.DB, userID uuid.UUID) error {
	now := time.Now()
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("refresh_token_user_id = ?", userID).
		Where("refresh_token_revoked_at IS NULL").
		Update("refresh_token_revoked_at", now).Error
}

func DeleteExpiredRefreshTokens(db *gorm.DB) (int64, error) {
	res := db.
		Where("refresh_token_expires_at < ?", time.Now()).
		Delete(&authModel.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}

/* ====================== TOKEN BLACKLIST ====================== */

func BlacklistToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklistModel{
		TokenBlacklistToken:     token,
		TokenBlacklistExpiredAt: expiredAt,
	}).Error
}

func DeleteExpiredBlacklistedTokens(db *gorm.DB) (int64, error) {
	res := db.
		Where("token_blacklist_expired_at < ?", time.Now()).
		Delete(&authModel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}
