package storage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

// UploadResult URL pública y identificador del recurso subido.
type UploadResult struct {
	URL      string
	PublicID string
}

// CloudinaryService adaptador de almacenamiento de imágenes sobre la API REST
// de Cloudinary. Usa net/http de la librería estándar; no requiere el SDK.
type CloudinaryService struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	httpClient *http.Client
}

// NewCloudinaryService construye el adaptador. Si cloudName está vacío las
// llamadas devuelven error descriptivo en lugar de panic.
func NewCloudinaryService(cloudName, apiKey, apiSecret, folder string) *CloudinaryService {
	return &CloudinaryService{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		folder:    folder,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Configured indica si hay credenciales para subir imágenes.
func (s *CloudinaryService) Configured() bool {
	return s.cloudName != "" && s.apiKey != "" && s.apiSecret != ""
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sube una imagen firmada y devuelve su URL pública.
// La firma es SHA-1 de los parámetros ordenados más el api_secret, según el
// esquema de autenticación de Cloudinary.
func (s *CloudinaryService) Upload(ctx context.Context, filename string, data []byte) (*UploadResult, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("cloudinary: credenciales no configuradas")
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := s.sign("folder=" + s.folder + "&timestamp=" + timestamp)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: preparar multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("cloudinary: escribir archivo: %w", err)
	}
	_ = w.WriteField("api_key", s.apiKey)
	_ = w.WriteField("timestamp", timestamp)
	_ = w.WriteField("folder", s.folder)
	_ = w.WriteField("signature", signature)
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("cloudinary: cerrar multipart: %w", err)
	}

	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", s.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: crear request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: enviar request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: leer respuesta: %w", err)
	}
	var out cloudinaryResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("cloudinary: respuesta inválida (%d): %w", resp.StatusCode, err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("cloudinary: %s", out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK || out.SecureURL == "" {
		return nil, fmt.Errorf("cloudinary: subida fallida (%d)", resp.StatusCode)
	}
	return &UploadResult{URL: out.SecureURL, PublicID: out.PublicID}, nil
}

func (s *CloudinaryService) sign(params string) string {
	sum := sha1.Sum([]byte(params + s.apiSecret))
	return hex.EncodeToString(sum[:])
}
