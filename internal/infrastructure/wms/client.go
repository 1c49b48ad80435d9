package wms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/wms-gateway/internal/domain"
	"github.com/jhoicas/wms-gateway/internal/domain/entity"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
	"github.com/jhoicas/wms-gateway/internal/domain/repository"
	"github.com/jhoicas/wms-gateway/pkg/config"
	"github.com/jhoicas/wms-gateway/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa WMSRepository.
var _ repository.WMSRepository = (*Client)(nil)

const (
	entityPath   = "/wms/lgfapi/v10/entity/"
	maxBodyBytes = 32 << 20
)

// Client adaptador que implementa WMSRepository sobre el API REST del WMS.
// Autenticación HTTP Basic con las credenciales configuradas, sin reintentos.
type Client struct {
	baseURL    string
	user       string
	password   string
	timeout    time.Duration
	maxBody    int64
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el adaptador. Un BaseURL vacío no se valida aquí: la
// primera llamada falla con un error de transporte.
func NewClient(cfg config.WMSConfig, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		user:       cfg.User,
		password:   cfg.Password,
		timeout:    timeout,
		maxBody:    maxBodyBytes,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// URL devuelve la URL completa de la consulta.
func (c *Client) URL(q query.Query) string {
	u := c.baseURL + entityPath + q.Entity + "/"
	if enc := q.Values().Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// Fetch ejecuta la consulta y normaliza la respuesta.
//   - 404 → resultado vacío.
//   - otro no-2xx → KindUpstreamStatus con status y cuerpo.
//   - 2xx no JSON → KindNonJSON.
//   - timeout / red → KindTransport.
func (c *Client) Fetch(ctx context.Context, q query.Query) ([]entity.Row, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(q), nil)
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindTransport, Message: fmt.Sprintf("WMS: crear request: %v", err), Err: err}
	}
	req.SetBasicAuth(c.user, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("entity", q.Entity).Dur("elapsed", time.Since(start)).Msg("WMS: llamada fallida")
		return nil, c.transportError(ctx, err)
	}
	defer resp.Body.Close()

	// Se lee un byte de más para distinguir un cuerpo truncado de uno completo.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, c.transportError(ctx, err)
	}
	oversized := int64(len(body)) > c.maxBody
	if oversized {
		body = body[:c.maxBody]
	}

	c.log.Debug().
		Str("entity", q.Entity).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("WMS: respuesta")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return []entity.Row{}, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &domain.Error{
			Kind:       domain.KindUpstreamStatus,
			Message:    fmt.Sprintf("WMS returned HTTP %d", resp.StatusCode),
			HTTPStatus: resp.StatusCode,
			Body:       string(body),
		}
	}

	if oversized {
		c.log.Warn().Str("entity", q.Entity).Int64("limit_bytes", c.maxBody).Msg("WMS: respuesta excede el límite")
		return nil, &domain.Error{
			Kind:    domain.KindTransport,
			Message: fmt.Sprintf("WMS response exceeds %d bytes", c.maxBody),
		}
	}

	raw, err := decode(body)
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindNonJSON, Message: "WMS returned non-JSON", Err: err}
	}
	return Normalize(raw), nil
}

func (c *Client) transportError(ctx context.Context, err error) *domain.Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &domain.Error{
			Kind:    domain.KindTransport,
			Message: fmt.Sprintf("WMS request timed out after %s", c.timeout),
			Err:     err,
		}
	}
	if ctx.Err() != nil {
		return &domain.Error{Kind: domain.KindTransport, Message: "WMS request cancelled", Err: ctx.Err()}
	}
	return &domain.Error{Kind: domain.KindTransport, Message: err.Error(), Err: err}
}
