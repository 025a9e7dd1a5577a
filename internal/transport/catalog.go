package transport

type CreateCategoryRequest struct {
	NameAr string  `json:"nameAr" validate:"required,notblank,max=255"`
	NameEn *string `json:"nameEn" validate:"omitnil,max=255"`
	Order  int     `json:"order"`
}

type PatchCategoryRequest struct {
	NameAr *string          `json:"nameAr,omitzero" validate:"omitnil,notblank,max=255"`
	NameEn Optional[string] `json:"nameEn,omitzero" validate:"omitempty,max=255"`
	Order  *int             `json:"order,omitzero"`
}

type CreateProductRequest struct {
	NameAr        string   `json:"nameAr"        validate:"required,notblank,max=255"`
	NameEn        *string  `json:"nameEn"        validate:"omitnil,max=255"`
	DescriptionAr *string  `json:"descriptionAr"`
	DescriptionEn *string  `json:"descriptionEn"`
	CategoryID    *string  `json:"categoryId"`
	ImageURL      *string  `json:"imageUrl"`
	VideoURL      *string  `json:"videoUrl"`
	FeaturesAr    []string `json:"featuresAr"    validate:"omitempty,dive,max=500"`
	FeaturesEn    []string `json:"featuresEn"    validate:"omitempty,dive,max=500"`
	Order         int      `json:"order"`
	IsActive      *bool    `json:"isActive"`
}

type PatchProductRequest struct {
	NameAr        *string          `json:"nameAr,omitzero" validate:"omitnil,notblank,max=255"`
	NameEn        Optional[string] `json:"nameEn,omitzero" validate:"omitempty,max=255"`
	DescriptionAr Optional[string] `json:"descriptionAr,omitzero"`
	DescriptionEn Optional[string] `json:"descriptionEn,omitzero"`
	CategoryID    Optional[string] `json:"categoryId,omitzero"`
	ImageURL      Optional[string] `json:"imageUrl,omitzero"`
	VideoURL      Optional[string] `json:"videoUrl,omitzero"`
	FeaturesAr    *[]string        `json:"featuresAr,omitzero" validate:"omitnil,dive,max=500"`
	FeaturesEn    *[]string        `json:"featuresEn,omitzero" validate:"omitnil,dive,max=500"`
	Order         *int             `json:"order,omitzero"`
	IsActive      *bool            `json:"isActive,omitzero"`
}

type CreateBannerRequest struct {
	ImageURL string  `json:"imageUrl" validate:"required,notblank"`
	LinkURL  *string `json:"linkUrl"`
	Order    int     `json:"order"`
	IsActive *bool   `json:"isActive"`
}

type PatchBannerRequest struct {
	ImageURL *string          `json:"imageUrl,omitzero" validate:"omitnil,notblank"`
	LinkURL  Optional[string] `json:"linkUrl,omitzero"`
	Order    *int             `json:"order,omitzero"`
	IsActive *bool            `json:"isActive,omitzero"`
}

type CreatePaymentMethodRequest struct {
	ImageURL string  `json:"imageUrl" validate:"required,notblank"`
	NameAr   *string `json:"nameAr"   validate:"omitnil,max=255"`
	NameEn   *string `json:"nameEn"   validate:"omitnil,max=255"`
	Order    int     `json:"order"`
}

type PatchPaymentMethodRequest struct {
	ImageURL *string          `json:"imageUrl,omitzero" validate:"omitnil,notblank"`
	NameAr   Optional[string] `json:"nameAr,omitzero" validate:"omitempty,max=255"`
	NameEn   Optional[string] `json:"nameEn,omitzero" validate:"omitempty,max=255"`
	Order    *int             `json:"order,omitzero"`
}

type CreateTelegramChannelRequest struct {
	ImageURL string  `json:"imageUrl" validate:"required,notblank"`
	LinkURL  string  `json:"linkUrl"  validate:"required,notblank"`
	NameAr   *string `json:"nameAr"   validate:"omitnil,max=255"`
	NameEn   *string `json:"nameEn"   validate:"omitnil,max=255"`
	Order    int     `json:"order"`
}

type PatchTelegramChannelRequest struct {
	ImageURL *string          `json:"imageUrl,omitzero" validate:"omitnil,notblank"`
	LinkURL  *string          `json:"linkUrl,omitzero" validate:"omitnil,notblank"`
	NameAr   Optional[string] `json:"nameAr,omitzero" validate:"omitempty,max=255"`
	NameEn   Optional[string] `json:"nameEn,omitzero" validate:"omitempty,max=255"`
	Order    *int             `json:"order,omitzero"`
}

type UpsertSettingRequest struct {
	Key   string  `json:"key"   validate:"required,notblank,max=191"`
	Value *string `json:"value"`
}
