package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tracker/internal/auth"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
)

// Login handles POST /login. On success it sets the httpOnly session
// cookie and returns the user. Every failure, wrong password or unknown
// account, yields the same 401.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	role := kernel.Role(request.Role)
	if err := role.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, "unknown role")
	}

	if err := s.credentials.Verify(request.Email, request.Password); err != nil {
		return writeError(ctx, http.StatusUnauthorized, "invalid email or password")
	}

	principal, user, err := s.lookupAccount(ctx, role, request.Email)
	if err != nil {
		return writeError(ctx, http.StatusUnauthorized, "invalid email or password")
	}

	token, err := s.tokens.Issue(principal)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return ctx.JSON(http.StatusOK, LoginResponse{User: user, Token: token})
}

func (s *Server) lookupAccount(ctx echo.Context, role kernel.Role, email string) (auth.Principal, any, error) {
	requestCtx := ctx.Request().Context()

	switch role {
	case kernel.RoleVendor:
		v, err := s.vendors.GetByEmail(requestCtx, email)
		if err != nil {
			return auth.Principal{}, nil, err
		}
		return auth.Principal{ID: v.ID(), Email: v.Email(), Name: v.Name(), Role: role}, VendorToDTO(v), nil
	case kernel.RoleDelivery:
		p, err := s.partners.GetByEmail(requestCtx, email)
		if err != nil {
			return auth.Principal{}, nil, err
		}
		return auth.Principal{ID: p.ID(), Email: p.Email(), Name: p.Name(), Role: role}, PartnerToDTO(p), nil
	default:
		c, err := s.customers.GetByEmail(requestCtx, email)
		if err != nil {
			return auth.Principal{}, nil, err
		}
		return auth.Principal{ID: c.ID(), Email: c.Email(), Name: c.Name(), Role: role}, CustomerToDTO(c), nil
	}
}

// GetVendors handles GET /vendors.
func (s *Server) GetVendors(ctx echo.Context) error {
	vendors, err := s.getVendorsHandler.Handle(ctx.Request().Context(), queries.NewGetVendorsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Vendor, 0, len(vendors))
	for _, v := range vendors {
		response = append(response, VendorToDTO(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateVendor handles POST /vendors. The password is hashed and kept
// next to the store so the new account can log in right away.
func (s *Server) CreateVendor(ctx echo.Context) error {
	var request CreateVendorRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if request.Password == "" {
		return writeError(ctx, http.StatusBadRequest, "password is required")
	}

	// Hash first so a bad credential fails before the account exists; the
	// install after a successful create cannot fail.
	credential, err := s.credentials.Prepare(request.Email, request.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateVendorCommand(request.Email, request.Name,
		request.BusinessName, request.Address, request.Phone)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.createVendorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	s.credentials.Put(credential)

	created, err := s.vendors.Get(ctx.Request().Context(), cmd.VendorID())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, VendorToDTO(created))
}

// GetDeliveryPartners handles GET /delivery-partners.
func (s *Server) GetDeliveryPartners(ctx echo.Context) error {
	return s.listPartners(ctx, false)
}

// GetAvailableDeliveryPartners handles GET /delivery-partners/available.
func (s *Server) GetAvailableDeliveryPartners(ctx echo.Context) error {
	return s.listPartners(ctx, true)
}

func (s *Server) listPartners(ctx echo.Context, availableOnly bool) error {
	partners, err := s.getPartnersHandler.Handle(ctx.Request().Context(),
		queries.NewGetPartnersQuery(availableOnly))
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DeliveryPartner, 0, len(partners))
	for _, p := range partners {
		response = append(response, PartnerToDTO(p))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateDeliveryPartner handles POST /delivery-partners.
func (s *Server) CreateDeliveryPartner(ctx echo.Context) error {
	var request CreatePartnerRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if request.Password == "" {
		return writeError(ctx, http.StatusBadRequest, "password is required")
	}

	credential, err := s.credentials.Prepare(request.Email, request.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreatePartnerCommand(request.Email, request.Name,
		request.Phone, request.VehicleType)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.createPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	s.credentials.Put(credential)

	created, err := s.partners.Get(ctx.Request().Context(), cmd.PartnerID())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, PartnerToDTO(created))
}

// SetAvailability handles POST /delivery-partners/availability. Partners
// may only toggle themselves.
func (s *Server) SetAvailability(ctx echo.Context) error {
	var request AvailabilityRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	principal, _ := auth.PrincipalFromContext(ctx.Request().Context())
	if principal == nil || principal.ID.String() != request.DeliveryPartnerID {
		return writeError(ctx, http.StatusUnauthorized, "cannot toggle another partner's availability")
	}

	cmd, err := commands.NewSetPartnerAvailabilityCommand(kernel.ID(request.DeliveryPartnerID), request.IsAvailable)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.partners.Get(ctx.Request().Context(), cmd.PartnerID())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, PartnerToDTO(updated))
}
