package service

import (
	"context"
	"log"
	"strings"

	"startup-hub-server/internal/model"
	"startup-hub-server/internal/modules/publicdata/client"
	"startup-hub-server/internal/modules/publicdata/repo"
	platformservice "startup-hub-server/internal/platform/service"
	"startup-hub-server/internal/utils"
)

const defaultNoticeRows = 100

// Source 公共数据来源
type Source interface {
	FetchNotices(ctx context.Context, rows int) ([]client.Notice, error)
	FetchPlaces(ctx context.Context, area string) ([]client.Place, error)
}

type Service struct {
	source      Source
	store       repo.PublicDataStore
	defaultArea string
}

func New(source Source, store repo.PublicDataStore, defaultArea string) *Service {
	if defaultArea == "" {
		defaultArea = "제주"
	}
	return &Service{source: source, store: store, defaultArea: defaultArea}
}

// SyncNotices 拉取最新公告并按 url 去重写入，返回处理条数
func (s *Service) SyncNotices(ctx context.Context) (int, error) {
	notices, err := s.source.FetchNotices(ctx, defaultNoticeRows)
	if err != nil {
		log.Printf("❌ 拉取公告失败: %v", err)
		return 0, platformservice.WrapServiceError(platformservice.ErrorCodeStorage, "公共数据接口请求失败", err)
	}

	seen := make(map[string]bool, len(notices))
	posts := make([]model.PublicPost, 0, len(notices))
	for _, n := range notices {
		if seen[n.URL] {
			continue
		}
		seen[n.URL] = true
		posts = append(posts, model.PublicPost{Title: n.Title, URL: n.URL, PostedAt: n.PostedAt})
	}

	if err := s.store.UpsertNotices(ctx, posts); err != nil {
		return 0, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "保存公告失败", err)
	}
	log.Printf("✅ 已同步 %d 条创业公告", len(posts))
	return len(posts), nil
}

// SyncPlaces 拉取地区支援中心并按 (name, region) 去重写入，area 为空时使用默认地区
func (s *Service) SyncPlaces(ctx context.Context, area string) (int, error) {
	area = strings.TrimSpace(area)
	if area == "" {
		area = s.defaultArea
	}

	fetched, err := s.source.FetchPlaces(ctx, area)
	if err != nil {
		log.Printf("❌ 拉取支援中心失败: %v", err)
		return 0, platformservice.WrapServiceError(platformservice.ErrorCodeStorage, "公共数据接口请求失败", err)
	}

	seen := make(map[string]bool, len(fetched))
	places := make([]model.StartupPlace, 0, len(fetched))
	for _, p := range fetched {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		places = append(places, model.StartupPlace{
			Name:       p.Name,
			Enterprise: p.Enterprise,
			Address:    p.Address,
			Tel:        p.Tel,
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			Region:     area,
		})
	}

	if err := s.store.UpsertPlaces(ctx, places); err != nil {
		return 0, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "保存支援中心失败", err)
	}
	log.Printf("✅ 已同步 %s 地区 %d 个创业支援中心", area, len(places))
	return len(places), nil
}

func (s *Service) ListNotices(ctx context.Context, page, pageSize int) ([]model.PublicPost, int64, int, int, error) {
	page, pageSize = utils.NormalizePage(page, pageSize)
	posts, total, err := s.store.ListNotices(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, page, pageSize, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "获取公告失败", err)
	}
	return posts, total, page, pageSize, nil
}

func (s *Service) ListPlaces(ctx context.Context, region string, page, pageSize int) ([]model.StartupPlace, int64, int, int, error) {
	page, pageSize = utils.NormalizePage(page, pageSize)
	places, total, err := s.store.ListPlaces(ctx, strings.TrimSpace(region), (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, page, pageSize, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "获取支援中心失败", err)
	}
	return places, total, page, pageSize, nil
}
