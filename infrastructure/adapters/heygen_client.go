package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/config"
	"github.com/Jfrancis347/personalised-video-2/domain"
)

type heygenBackground struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type heygenVoiceSettings struct {
	Stability  float64 `json:"stability"`
	Similarity float64 `json:"similarity"`
}

type heygenVideoSettings struct {
	Ratio   string `json:"ratio"`
	Quality string `json:"quality"`
}

type heygenClip struct {
	AvatarID      string              `json:"avatar_id"`
	AvatarStyle   string              `json:"avatar_style"`
	InputText     string              `json:"input_text"`
	VoiceID       string              `json:"voice_id"`
	VoiceSettings heygenVoiceSettings `json:"voice_settings"`
	Background    heygenBackground    `json:"background"`
	VideoSettings heygenVideoSettings `json:"video_settings"`
}

type heygenCreateVideoRequest struct {
	AvatarID   string           `json:"avatar_id"`
	Background heygenBackground `json:"background"`
	Clips      []heygenClip     `json:"clips"`
	Test       bool             `json:"test"`
	Enhance    bool             `json:"enhance"`
}

type heygenCreateVideoResponse struct {
	VideoID  string `json:"video_id"`
	ID       string `json:"id"`
	Status   string `json:"status"`
	VideoURL string `json:"video_url"`
}

type heygenVideoStatusResponse struct {
	Status   string `json:"status"`
	VideoURL string `json:"video_url"`
	Error    string `json:"error"`
}

type heygenAvatarsResponse struct {
	Data []domain.VendorAvatar `json:"data"`
}

type heygenClient struct {
	ContentFetcher
	logger       outbound.LoggerPort
	heygenConfig *config.HeyGenConfig
}

func NewHeyGenClient(contentFetcher ContentFetcher, heygenConfig *config.HeyGenConfig, logger outbound.LoggerPort) outbound.VideoVendorPort {
	return &heygenClient{
		ContentFetcher: contentFetcher,
		logger:         logger,
		heygenConfig:   heygenConfig,
	}
}

func (h *heygenClient) CreateVideo(ctx context.Context, params outbound.CreateVideoParams) (*outbound.VendorVideo, error) {
	if params.AvatarID == "" {
		return nil, domain.NewValidationError("avatar_id", "must not be empty")
	}
	if params.Script == "" {
		return nil, domain.NewValidationError("script", "must not be empty")
	}

	background := heygenBackground{Type: "color", Value: "#ffffff"}
	reqBody := heygenCreateVideoRequest{
		AvatarID:   params.AvatarID,
		Background: background,
		Clips: []heygenClip{
			{
				AvatarID:    params.AvatarID,
				AvatarStyle: "normal",
				InputText:   params.Script,
				VoiceID:     h.heygenConfig.VoiceID,
				VoiceSettings: heygenVoiceSettings{
					Stability:  h.heygenConfig.VoiceStability,
					Similarity: h.heygenConfig.VoiceSimilarity,
				},
				Background: background,
				VideoSettings: heygenVideoSettings{
					Ratio:   "16:9",
					Quality: "high",
				},
			},
		},
		Test:    params.Test,
		Enhance: true,
	}

	req, err := h.getRequest(ctx, http.MethodPost, "/videos", reqBody)
	if err != nil {
		return nil, err
	}

	res, err := h.FetchContent(req)
	if err != nil {
		return nil, &domain.VendorError{Op: "create video", Err: err}
	}
	if !res.OK() {
		return nil, &domain.VendorError{Op: "create video", StatusCode: res.StatusCode, Payload: string(res.Body)}
	}

	var created heygenCreateVideoResponse
	if err := json.Unmarshal(res.Body, &created); err != nil {
		h.logger.Error(err, "Failed to unmarshal the create video response")
		return nil, &domain.VendorError{Op: "create video", Err: err}
	}

	videoID := created.VideoID
	if videoID == "" {
		videoID = created.ID
	}

	return &outbound.VendorVideo{
		ID:     videoID,
		Status: domain.StatusPending,
	}, nil
}

func (h *heygenClient) GetVideoStatus(ctx context.Context, videoID string) (*outbound.VendorVideoStatus, error) {
	if videoID == "" {
		return nil, domain.NewValidationError("video_id", "must not be empty")
	}

	req, err := h.getRequest(ctx, http.MethodGet, "/videos/"+videoID, nil)
	if err != nil {
		return nil, err
	}

	res, err := h.FetchContent(req)
	if err != nil {
		return nil, &domain.VendorError{Op: "get video status", Err: err}
	}
	if !res.OK() {
		return nil, &domain.VendorError{Op: "get video status", StatusCode: res.StatusCode, Payload: string(res.Body)}
	}

	var status heygenVideoStatusResponse
	if err := json.Unmarshal(res.Body, &status); err != nil {
		h.logger.Error(err, "Failed to unmarshal the video status response")
		return nil, &domain.VendorError{Op: "get video status", Err: err}
	}

	return &outbound.VendorVideoStatus{
		Status:   domain.GenerationStatus(status.Status),
		VideoURL: status.VideoURL,
		Error:    status.Error,
	}, nil
}

func (h *heygenClient) ListAvatars(ctx context.Context) ([]domain.VendorAvatar, error) {
	req, err := h.getRequest(ctx, http.MethodGet, "/avatars", nil)
	if err != nil {
		return nil, err
	}

	res, err := h.FetchContent(req)
	if err != nil {
		return nil, &domain.VendorError{Op: "list avatars", Err: err}
	}
	if !res.OK() {
		return nil, &domain.VendorError{Op: "list avatars", StatusCode: res.StatusCode, Payload: string(res.Body)}
	}

	var avatars heygenAvatarsResponse
	if err := json.Unmarshal(res.Body, &avatars); err != nil {
		h.logger.Error(err, "Failed to unmarshal the avatars response")
		return nil, &domain.VendorError{Op: "list avatars", Err: err}
	}

	return avatars.Data, nil
}

func (h *heygenClient) getRequest(ctx context.Context, method string, endpoint string, body interface{}) (*http.Request, error) {
	var payload *bytes.Buffer
	if body != nil {
		jsonPayload, err := json.Marshal(body)
		if err != nil {
			h.logger.Error(err, "Failed to marshal the request body")
			return nil, err
		}
		payload = bytes.NewBuffer(jsonPayload)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.heygenConfig.ApiUrl+endpoint, payload)
	if err != nil {
		h.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	reqHeaders := map[string]string{
		"Authorization": "Bearer " + h.heygenConfig.ApiKey,
		"Content-Type":  "application/json",
		"Accept":        "application/json",
	}
	for key, value := range reqHeaders {
		req.Header.Add(key, value)
	}

	return req, nil
}
