package entity

// ProductShadow is the local row that lets cart lines reference a product
// owned by the content service. It is created lazily and never deleted.
type ProductShadow struct {
	Code       string `gorm:"column:id_producto;primaryKey;size:64"`
	DocumentID string `gorm:"column:prod_document_id;size:64;not null;uniqueIndex"`
}

// TableName pins the table name.
func (ProductShadow) TableName() string { return "producto" }
