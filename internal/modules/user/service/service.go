package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"startup-hub-server/internal/config"
	"startup-hub-server/internal/model"
	moduledto "startup-hub-server/internal/modules/user/dto"
	"startup-hub-server/internal/modules/user/repo"
	platformservice "startup-hub-server/internal/platform/service"
	"startup-hub-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const maxNicknameRunes = 32

type Service struct {
	userStore repo.UserStore
}

func New(userStore repo.UserStore) *Service {
	return &Service{userStore: userStore}
}

// ToProfile 转换为对外的用户信息
func ToProfile(u *model.User) moduledto.UserProfile {
	return moduledto.UserProfile{ID: u.ID, Username: u.Username, Nickname: u.Nickname}
}

// Register 注册新用户，昵称为空时使用用户名
func (s *Service) Register(ctx context.Context, req moduledto.RegisterRequest) (*moduledto.UserProfile, error) {
	if ok, msg := utils.ValidateUsername(req.Username); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		nickname = req.Username
	}
	if utf8.RuneCountInString(nickname) > maxNicknameRunes {
		return nil, platformservice.NewValidationError("昵称最多32个字符")
	}

	taken, err := s.userStore.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "注册失败，请稍后重试", err)
	}
	if taken {
		return nil, platformservice.NewConflictError("用户名已存在")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "密码加密失败", err)
	}

	user := model.User{Username: req.Username, Password: string(hashedPassword), Nickname: nickname}
	if err := s.userStore.Create(ctx, &user); err != nil {
		log.Printf("❌ 创建用户失败: %v", err)
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "注册失败，请稍后重试", err)
	}

	profile := ToProfile(&user)
	return &profile, nil
}

// Login 校验用户名密码并签发登录令牌
func (s *Service) Login(ctx context.Context, username, password string) (*moduledto.LoginResponse, error) {
	user, err := s.userStore.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ 查询用户失败: %v", err)
			return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "登录失败，请稍后重试", err)
		}
		return nil, platformservice.NewUnauthorizedError("用户名或密码错误")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, platformservice.NewUnauthorizedError("用户名或密码错误")
	}

	hours := config.Get().JWT.ExpirationHours
	if hours <= 0 {
		hours = 24
	}
	token, err := utils.GenerateLoginToken(user.ID, user.Username, time.Duration(hours)*time.Hour)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "生成令牌失败", err)
	}
	return &moduledto.LoginResponse{Token: token, User: ToProfile(user)}, nil
}

func (s *Service) GetProfile(ctx context.Context, userID uint) (*moduledto.UserProfile, error) {
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("用户不存在")
		}
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "获取用户信息失败", err)
	}
	profile := ToProfile(user)
	return &profile, nil
}
