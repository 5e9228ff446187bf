package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	authRepo "campushub_backend/internals/features/users/auth/repository"
	userModel "campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
)

const githubStateTTL = 10 * time.Minute

func githubOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     configs.GitHubClientID,
		ClientSecret: configs.GitHubClientSecret,
		RedirectURL:  configs.GitHubRedirectURI,
		Scopes:       []string{"read:user", "user:email"},
		Endpoint:     endpoints.GitHub,
	}
}

// signState issues a short-lived JWT as the OAuth state parameter. Carrying
// the return URL inside the signed state keeps the flow stateless.
func signState(returnTo string) (string, error) {
	claims := jwt.MapClaims{
		"typ":       "oauth_state",
		"return_to": returnTo,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(githubStateTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

func verifyState(state string) (string, error) {
	tok, err := jwt.Parse(state, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", errors.New("invalid state")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "oauth_state" {
		return "", errors.New("invalid state")
	}
	returnTo, _ := claims["return_to"].(string)
	return returnTo, nil
}

// ========================== GITHUB REDIRECT ==========================
// GET /api/auth/github
func LoginGitHub(c *fiber.Ctx) error {
	if configs.GitHubClientID == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "GitHub sign-in is not configured")
	}
	returnTo := c.Query("return_to", configs.FrontendBaseURL)
	if !strings.HasPrefix(returnTo, configs.FrontendBaseURL) {
		returnTo = configs.FrontendBaseURL
	}
	state, err := signState(returnTo)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign state")
	}
	return c.Redirect(githubOAuthConfig().AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

type githubUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

func fetchGitHubJSON(client *http.Client, url string, out any) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(body, out)
}

// ========================== GITHUB CALLBACK ==========================
// GET /api/auth/github/callback
func LoginGitHubCallback(db *gorm.DB, c *fiber.Ctx) error {
	returnTo, err := verifyState(c.Query("state"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid OAuth state")
	}
	code := c.Query("code")
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing authorization code")
	}

	conf := githubOAuthConfig()
	token, err := conf.Exchange(c.Context(), code)
	if err != nil {
		log.Printf("[ERROR] github code exchange failed: %v", err)
		return helper.JsonError(c, fiber.StatusUnauthorized, "GitHub authorization failed")
	}

	client := conf.Client(c.Context(), token)
	var ghUser githubUser
	if err := fetchGitHubJSON(client, "https://api.github.com/user", &ghUser); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to fetch GitHub profile")
	}
	if ghUser.Email == "" {
		// Private-email accounts expose addresses only on /user/emails.
		var emails []githubEmail
		if err := fetchGitHubJSON(client, "https://api.github.com/user/emails", &emails); err == nil {
			for _, e := range emails {
				if e.Primary && e.Verified {
					ghUser.Email = e.Email
					break
				}
			}
		}
	}
	if ghUser.Email == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "GitHub account has no verified email")
	}

	githubID := strconv.FormatInt(ghUser.ID, 10)
	name := ghUser.Name
	if name == "" {
		name = ghUser.Login
	}
	email := strings.ToLower(ghUser.Email)

	user, err := authRepo.FindUserByGitHubID(db, githubID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = authRepo.FindUserByEmail(db, email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = &userModel.UserModel{
				UserName:     name,
				UserEmail:    email,
				UserGitHubID: &githubID,
			}
			if err := authRepo.CreateUser(db, user); err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
			}
		} else if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
		} else {
			user.UserGitHubID = &githubID
			if err := db.Model(user).Update("user_github_id", githubID).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to link GitHub account")
			}
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	if _, err := IssueTokens(db, c, user); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return c.Redirect(returnTo, fiber.StatusTemporaryRedirect)
}
