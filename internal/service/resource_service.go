package service

import (
	"context"
	"time"

	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/pkg/logger"
	"ai-salesclone-be/internal/pkg/serverutils"
	"ai-salesclone-be/pkg/tavus"

	"github.com/patrickmn/go-cache"
)

type IResourceService interface {
	ListResources(ctx context.Context, req *dto.ListResourcesRequest) (*dto.ResourcesResponse, error)
	CreatePersona(ctx context.Context, req *dto.CreatePersonaRequest) (*dto.CreatePersonaResponse, error)
}

// resourceService aggregates selectable provider resources for the setup UI.
// Each list degrades independently so one broken endpoint never empties the
// whole picker.
type resourceService struct {
	gateway tavus.Gateway
	log     logger.ILogger
	cache   *cache.Cache
}

func NewResourceService(gateway tavus.Gateway, log logger.ILogger) IResourceService {
	return &resourceService{
		gateway: gateway,
		log:     log,
		cache:   cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *resourceService) ListResources(ctx context.Context, req *dto.ListResourcesRequest) (*dto.ResourcesResponse, error) {
	if !s.gateway.Configured() {
		return &dto.ResourcesResponse{
			Replicas: []dto.ReplicaResource{},
			Personas: []dto.PersonaResource{},
			Voices:   []dto.VoiceResource{},
			Avatars:  []dto.AvatarResource{},
			Message:  "Tavus API key is not configured. Add TAVUS_API_KEY to enable avatar resources.",
		}, nil
	}

	resourceType := req.Type
	if resourceType == "" {
		resourceType = "all"
	}
	want := func(kind string) bool {
		return resourceType == "all" || resourceType == kind
	}

	cacheKey := "tavus_resources:" + resourceType + ":" + req.Industry
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.ResourcesResponse), nil
	}

	resp := &dto.ResourcesResponse{
		Replicas: []dto.ReplicaResource{},
		Personas: []dto.PersonaResource{},
		Voices:   []dto.VoiceResource{},
		Avatars:  []dto.AvatarResource{},
	}

	if want("replicas") {
		if replicas, err := s.gateway.ListReplicas(ctx, tavus.ReplicaFilter{}); err != nil {
			s.logFetchFailure("replicas", err)
		} else {
			for _, r := range replicas {
				resp.Replicas = append(resp.Replicas, dto.ReplicaResource{
					ReplicaId:    r.ReplicaID,
					Name:         r.ReplicaName,
					Status:       r.Status,
					ThumbnailUrl: r.ThumbnailVideoURL,
				})
			}
		}
	}

	if want("personas") {
		if personas, err := s.gateway.ListPersonas(ctx); err != nil {
			s.logFetchFailure("personas", err)
		} else {
			for _, p := range personas {
				resp.Personas = append(resp.Personas, dto.PersonaResource{
					PersonaId: p.PersonaID,
					Name:      p.PersonaName,
				})
			}
		}
	}

	if want("voices") {
		if voices, err := s.gateway.ListVoices(ctx); err != nil {
			s.logFetchFailure("voices", err)
		} else {
			for _, v := range voices {
				sample := v.SampleURL
				if sample == "" {
					sample = v.PreviewURL
				}
				resp.Voices = append(resp.Voices, dto.VoiceResource{
					VoiceId:   v.VoiceID,
					Name:      v.Name,
					Language:  v.Language,
					SampleUrl: sample,
				})
			}
		}
	}

	if want("avatars") {
		if avatars, err := s.gateway.ListAvatars(ctx, req.Industry); err != nil {
			s.logFetchFailure("avatars", err)
		} else {
			for _, a := range avatars {
				resp.Avatars = append(resp.Avatars, dto.AvatarResource{
					AvatarId:     a.AvatarID,
					Name:         a.Name,
					ThumbnailUrl: a.ThumbnailURL,
				})
			}
		}
	}

	s.cache.Set(cacheKey, resp, cache.DefaultExpiration)
	return resp, nil
}

func (s *resourceService) CreatePersona(ctx context.Context, req *dto.CreatePersonaRequest) (*dto.CreatePersonaResponse, error) {
	if !s.gateway.Configured() {
		return nil, serverutils.NewNotConfiguredError("Tavus API key is not configured")
	}

	spec := tavus.PersonaSpec{
		PersonaName:  req.Name,
		SystemPrompt: req.SystemPrompt,
		Context:      req.Context,
		Layers:       personaLayers(req),
	}
	if req.ReplicaId != nil {
		spec.DefaultReplicaID = *req.ReplicaId
	}

	persona, err := s.gateway.CreatePersona(ctx, spec)
	if err != nil {
		return nil, err
	}

	// Persona lists are cached per filter, drop everything so the new one
	// shows up immediately
	s.cache.Flush()

	return &dto.CreatePersonaResponse{PersonaId: persona.PersonaID}, nil
}

// personaLayers builds the perception and speech layers. Smart turn
// detection defaults to on unless the caller switches it off.
func personaLayers(req *dto.CreatePersonaRequest) map[string]interface{} {
	smart := true
	if req.SmartTurnDetection != nil {
		smart = *req.SmartTurnDetection
	}

	layers := map[string]interface{}{
		"stt": map[string]interface{}{
			"smart_turn_detection": smart,
		},
	}
	if req.PerceptionModel != nil && *req.PerceptionModel != "" {
		layers["perception"] = map[string]interface{}{
			"perception_model": *req.PerceptionModel,
		}
	}
	return layers
}

func (s *resourceService) logFetchFailure(resource string, err error) {
	s.log.Warn("resource_service", "failed to fetch provider resource list", map[string]interface{}{
		"resource": resource,
		"error":    err.Error(),
	})
}
