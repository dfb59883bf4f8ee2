package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jineshsingatkar/ArtVista/models"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// Optional expected role: the login is rejected when the account's
	// role does not match (e.g. the artist login form).
	Role    string `json:"role"`
	GuestID string `json:"guest_id"`
}

type SignupRequest struct {
	Name          string                `json:"name" binding:"required,min=2"`
	Email         string                `json:"email" binding:"required,email"`
	Password      string                `json:"password" binding:"required,min=6"`
	Role          string                `json:"role"`
	GuestID       string                `json:"guest_id"`
	ArtistProfile *models.ArtistProfile `json:"artist_profile"`
}

// cartScope reads the CART_SCOPE switch: "identity" (default) merges
// the guest cart into the user cart on login; "browser" leaves the
// guest cart alone so it stays scoped to the browser context.
func cartScope() string {
	scope := strings.ToLower(os.Getenv("CART_SCOPE"))
	if scope != "browser" {
		return "identity"
	}
	return scope
}

// POST /auth/login
func LoginHandler(db *gorm.DB, verifier CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if !verifier.Verify(user.Password, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
			return
		}

		if req.Role != "" && req.Role != string(user.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account does not have the requested role"})
			return
		}

		mergeStatus := "no-guest-cart"
		if req.GuestID != "" && cartScope() == "identity" {
			merged, err := mergeGuestCartIntoUserCart(db, req.GuestID, user.ID)
			if err != nil {
				mergeStatus = "merge-failed"
			} else if merged {
				mergeStatus = "merged-success"
			} else {
				mergeStatus = "guest-cart-empty"
			}
		}

		token, err := IssueToken(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"token":        token,
			"user":         user,
			"merge_status": mergeStatus,
		})
	}
}

// POST /auth/signup
func SignupHandler(db *gorm.DB, verifier CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		role := models.RoleUser
		switch req.Role {
		case "", string(models.RoleUser):
		case string(models.RoleArtist):
			role = models.RoleArtist
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}

		hash, err := verifier.Hash(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process credentials"})
			return
		}

		user := models.User{
			ID:       "user-" + uuid.NewString(),
			Email:    email,
			Password: hash,
			Name:     req.Name,
			Role:     role,
			// Regular users are live immediately; artists wait for
			// admin approval before their works are listed.
			Approved:  role == models.RoleUser,
			CreatedAt: time.Now(),
		}
		if req.ArtistProfile != nil && role == models.RoleArtist {
			user.Artist = *req.ArtistProfile
		}
		user.Cart = models.Cart{UserID: user.ID}

		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		mergeStatus := "no-guest-cart"
		if req.GuestID != "" && cartScope() == "identity" {
			if merged, err := mergeGuestCartIntoUserCart(db, req.GuestID, user.ID); err != nil {
				mergeStatus = "merge-failed"
			} else if merged {
				mergeStatus = "merged-success"
			} else {
				mergeStatus = "guest-cart-empty"
			}
		}

		token, err := IssueToken(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":      "Account created",
			"token":        token,
			"user":         user,
			"merge_status": mergeStatus,
		})
	}
}

// POST /auth/logout
//
// Sessions live in the bearer token, so there is nothing to revoke
// server-side; the endpoint exists so clients get a confirmation
// before discarding their copy.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// mergeGuestCartIntoUserCart folds an anonymous browser cart into the
// freshly authenticated user's cart. Quantities of matching artworks
// add; the guest cart is deleted afterwards.
func mergeGuestCartIntoUserCart(db *gorm.DB, guestID, userID string) (bool, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	var guestCart models.GuestCart
	if err := tx.Preload("Items").Where("guest_id = ?", guestID).First(&guestCart).Error; err != nil {
		tx.Rollback()
		return false, nil // nothing to merge
	}
	if len(guestCart.Items) == 0 {
		tx.Rollback()
		return false, nil
	}

	var userCart models.Cart
	err := tx.Preload("Items").Where("user_id = ?", userID).First(&userCart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		userCart = models.Cart{UserID: userID}
		if err := tx.Create(&userCart).Error; err != nil {
			tx.Rollback()
			return false, err
		}
	} else if err != nil {
		tx.Rollback()
		return false, err
	}

	for _, guestItem := range guestCart.Items {
		var userItem models.CartItem
		lookupErr := tx.Where("cart_id = ? AND artwork_id = ?", userCart.CartID, guestItem.ArtworkID).
			First(&userItem).Error

		if lookupErr == nil {
			userItem.Quantity += guestItem.Quantity
			userItem.AddedAt = time.Now()
			if err := tx.Save(&userItem).Error; err != nil {
				tx.Rollback()
				return false, err
			}
		} else if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			newItem := models.CartItem{
				CartID:       userCart.CartID,
				ArtworkID:    guestItem.ArtworkID,
				ArtworkTitle: guestItem.ArtworkTitle,
				ArtworkImage: guestItem.ArtworkImage,
				ArtistName:   guestItem.ArtistName,
				Price:        guestItem.Price,
				Quantity:     guestItem.Quantity,
				AddedAt:      time.Now(),
			}
			if err := tx.Create(&newItem).Error; err != nil {
				tx.Rollback()
				return false, err
			}
		} else {
			tx.Rollback()
			return false, lookupErr
		}
	}

	if err := tx.Where("cart_id = ?", guestCart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
		tx.Rollback()
		return false, err
	}
	if err := tx.Delete(&guestCart).Error; err != nil {
		tx.Rollback()
		return false, err
	}

	return true, tx.Commit().Error
}
