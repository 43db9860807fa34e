package client

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"startup-hub-server/internal/config"
)

const maxResponseBytes = 8 << 20

// Notice 创业网公告
type Notice struct {
	Title    string
	URL      string
	PostedAt time.Time
}

// Place 创业支援中心
type Place struct {
	Name       string
	Enterprise string
	Address    string
	Tel        string
	Latitude   float64
	Longitude  float64
}

type Client struct {
	httpClient *http.Client
	serviceKey string
	noticeURL  string
	placeURL   string
}

func New(cfg config.PublicDataConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		serviceKey: cfg.ServiceKey,
		noticeURL:  cfg.NoticeURL,
		placeURL:   cfg.PlaceURL,
	}
}

type noticeResponse struct {
	XMLName xml.Name `xml:"response"`
	Header  struct {
		ResultCode string `xml:"resultCode"`
		ResultMsg  string `xml:"resultMsg"`
	} `xml:"header"`
	Body struct {
		Items struct {
			Item []struct {
				Title      string `xml:"title"`
				DetailURL  string `xml:"detailurl"`
				InsertDate string `xml:"insertdate"`
			} `xml:"item"`
		} `xml:"items"`
	} `xml:"body"`
}

type placeResponse struct {
	XMLName xml.Name `xml:"items"`
	Item    []struct {
		Name       string `xml:"cnterNm"`
		Enterprise string `xml:"cnterTyNm"`
		Address    string `xml:"adr"`
		Tel        string `xml:"telnm"`
		Latitude   string `xml:"la"`
		Longitude  string `xml:"lo"`
	} `xml:"item"`
}

// FetchNotices 拉取最新公告
func (c *Client) FetchNotices(ctx context.Context, rows int) ([]Notice, error) {
	if rows <= 0 {
		rows = 100
	}
	q := url.Values{}
	q.Set("numOfRows", strconv.Itoa(rows))
	q.Set("startPage", "1")
	q.Set("pageSize", strconv.Itoa(rows))
	q.Set("pageNo", "1")

	var resp noticeResponse
	if err := c.get(ctx, c.noticeURL, q, &resp); err != nil {
		return nil, err
	}
	if code := strings.TrimSpace(resp.Header.ResultCode); code != "" && code != "00" {
		return nil, fmt.Errorf("notice api error %s: %s", code, strings.TrimSpace(resp.Header.ResultMsg))
	}

	notices := make([]Notice, 0, len(resp.Body.Items.Item))
	for _, it := range resp.Body.Items.Item {
		link := strings.TrimSpace(it.DetailURL)
		if link == "" {
			continue
		}
		notices = append(notices, Notice{
			Title:    strings.TrimSpace(it.Title),
			URL:      link,
			PostedAt: parseDate(it.InsertDate),
		})
	}
	return notices, nil
}

// FetchPlaces 拉取指定地区的创业支援中心
func (c *Client) FetchPlaces(ctx context.Context, area string) ([]Place, error) {
	q := url.Values{}
	q.Set("area", area)

	var resp placeResponse
	if err := c.get(ctx, c.placeURL, q, &resp); err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(resp.Item))
	for _, it := range resp.Item {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			continue
		}
		places = append(places, Place{
			Name:       name,
			Enterprise: strings.TrimSpace(it.Enterprise),
			Address:    strings.TrimSpace(it.Address),
			Tel:        strings.TrimSpace(it.Tel),
			Latitude:   parseCoord(it.Latitude),
			Longitude:  parseCoord(it.Longitude),
		})
	}
	return places, nil
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out interface{}) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if c.serviceKey != "" {
		q.Set("serviceKey", c.serviceKey)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, u.Host)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode xml: %w", err)
	}
	return nil
}

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006.01.02",
	"20060102",
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, seoul); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

var seoul = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}()
