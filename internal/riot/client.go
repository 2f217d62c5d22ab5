package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/valyala/fasthttp"

	"valorant-stats/internal/config"
)

// Client talks to the Riot account and VAL match APIs. Account endpoints
// are served by the regional cluster host; match endpoints are served by
// the shard host resolved per account, passed in by the caller.
type Client struct {
	apiKey      string
	accountBase string
	client      *fasthttp.Client
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo is a snapshot of the app rate-limit headers from the most
// recent response. Observability only; the client never throttles.
type RateLimitInfo struct {
	AppLimit string `json:"app_limit"`
	AppCount string `json:"app_count"`

	// seconds, only present on 429 responses
	RetryAfter int `json:"retry_after"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewClient(cfg *config.Config) *Client {
	return NewClientWithBase(cfg.RiotAPIKey, fmt.Sprintf("https://%s.api.riotgames.com", cfg.AccountRegion))
}

// NewClientWithBase builds a client against an explicit account-cluster
// base URL.
func NewClientWithBase(apiKey, accountBase string) *Client {
	return &Client{
		apiKey:      apiKey,
		accountBase: accountBase,
		client: &fasthttp.Client{
			MaxConnsPerHost:     10,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *Client) RateLimit() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *Client) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-App-Rate-Limit")); limit != "" {
		c.rateLimit.AppLimit = limit
	}
	if count := string(resp.Header.Peek("X-App-Rate-Limit-Count")); count != "" {
		c.rateLimit.AppCount = count
	}
	c.rateLimit.RetryAfter = 0
	if retry := string(resp.Header.Peek("Retry-After")); retry != "" {
		if val, err := strconv.Atoi(retry); err == nil {
			c.rateLimit.RetryAfter = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

// GetAccount resolves a Riot ID to an account. A response without a puuid
// is reported as an error, same as a transport failure.
func (c *Client) GetAccount(ctx context.Context, name, tag string) (*Account, error) {
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s", c.accountBase, url.PathEscape(name), url.PathEscape(tag))
	account, err := doRequest[Account](ctx, c, u)
	if err != nil {
		return nil, err
	}
	if account.Puuid == "" {
		return nil, fmt.Errorf("account response missing puuid")
	}
	return account, nil
}

// GetActiveShard resolves which VAL shard serves the account.
func (c *Client) GetActiveShard(ctx context.Context, puuid string) (*ActiveShard, error) {
	u := fmt.Sprintf("%s/riot/account/v1/active-shards/by-game/val/by-puuid/%s", c.accountBase, puuid)
	active, err := doRequest[ActiveShard](ctx, c, u)
	if err != nil {
		return nil, err
	}
	if active.ActiveShard == "" {
		return nil, fmt.Errorf("active-shard response missing shard code")
	}
	return active, nil
}

func (c *Client) GetMatchList(ctx context.Context, shardHost, puuid string) (*MatchList, error) {
	u := fmt.Sprintf("%s/val/match/v1/matchlists/by-puuid/%s", shardHost, puuid)
	return doRequest[MatchList](ctx, c, u)
}

func (c *Client) GetMatch(ctx context.Context, shardHost, matchID string) (*Match, error) {
	u := fmt.Sprintf("%s/val/match/v1/matches/%s", shardHost, matchID)
	return doRequest[Match](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *Client, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	client.updateRateLimit(resp)

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("riot API error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type ActiveShard struct {
	Puuid       string `json:"puuid"`
	Game        string `json:"game"`
	ActiveShard string `json:"activeShard"`
}

type MatchList struct {
	Puuid string `json:"puuid"`
	// newest first, per the upstream API
	History []MatchListEntry `json:"history"`
}

type MatchListEntry struct {
	MatchID             string `json:"matchId"`
	GameStartTimeMillis int64  `json:"gameStartTimeMillis"`
	QueueID             string `json:"queueId"`
}

type Match struct {
	MatchInfo MatchInfo `json:"matchInfo"`
	Players   []Player  `json:"players"`
	Teams     []Team    `json:"teams"`
}

type MatchInfo struct {
	MatchID          string `json:"matchId"`
	MapID            string `json:"mapId"`
	GameLengthMillis int64  `json:"gameLengthMillis"`
	GameStartMillis  int64  `json:"gameStartMillis"`
	QueueID          string `json:"queueId"`
	IsCompleted      bool   `json:"isCompleted"`
	GameMode         string `json:"gameMode"`
	SeasonID         string `json:"seasonId"`
}

type Player struct {
	Puuid           string      `json:"puuid"`
	GameName        string      `json:"gameName"`
	TagLine         string      `json:"tagLine"`
	TeamID          string      `json:"teamId"`
	PartyID         string      `json:"partyId"`
	CharacterID     string      `json:"characterId"`
	CompetitiveTier int         `json:"competitiveTier"`
	Stats           PlayerStats `json:"stats"`
}

// PlayerStats decodes with zero defaults: any stat the API omits counts
// as 0 rather than failing the match.
type PlayerStats struct {
	Score          int   `json:"score"`
	RoundsPlayed   int   `json:"roundsPlayed"`
	Kills          int   `json:"kills"`
	Deaths         int   `json:"deaths"`
	Assists        int   `json:"assists"`
	PlaytimeMillis int64 `json:"playtimeMillis"`
}

type Team struct {
	TeamID       string `json:"teamId"`
	Won          bool   `json:"won"`
	RoundsPlayed int    `json:"roundsPlayed"`
	RoundsWon    int    `json:"roundsWon"`
	NumPoints    int    `json:"numPoints"`
}
