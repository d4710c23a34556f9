package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "compendium.api.v1alpha1.CompendiumService"

// CompendiumServiceServer is the server API for CompendiumService
type CompendiumServiceServer interface {
	CreateMonster(context.Context, *CreateMonsterRequest) (*CreateMonsterResponse, error)
	UpdateMonster(context.Context, *UpdateMonsterRequest) (*UpdateMonsterResponse, error)
	GetMonster(context.Context, *GetMonsterRequest) (*GetMonsterResponse, error)
	DeleteMonster(context.Context, *DeleteMonsterRequest) (*DeleteMonsterResponse, error)
	ListMonsters(context.Context, *ListMonstersRequest) (*ListMonstersResponse, error)
	SearchMonsters(context.Context, *SearchMonstersRequest) (*SearchMonstersResponse, error)
	GetMonsterStats(context.Context, *GetMonsterStatsRequest) (*GetMonsterStatsResponse, error)
	CreateMagicItem(context.Context, *CreateMagicItemRequest) (*CreateMagicItemResponse, error)
	GetMagicItem(context.Context, *GetMagicItemRequest) (*GetMagicItemResponse, error)
	DeleteMagicItem(context.Context, *DeleteMagicItemRequest) (*DeleteMagicItemResponse, error)
	ListMagicItems(context.Context, *ListMagicItemsRequest) (*ListMagicItemsResponse, error)
	ImportSRDWeapons(context.Context, *ImportSRDWeaponsRequest) (*ImportSRDWeaponsResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error)
	GetPreference(context.Context, *GetPreferenceRequest) (*GetPreferenceResponse, error)
	SetPreference(context.Context, *SetPreferenceRequest) (*SetPreferenceResponse, error)
	ListPreferences(context.Context, *ListPreferencesRequest) (*ListPreferencesResponse, error)
}

// FullMethod returns "/<service>/<method>"
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// ReadOnlyMethods are the calls that never change stored records
func ReadOnlyMethods() []string {
	return []string{
		FullMethod("GetMonster"),
		FullMethod("ListMonsters"),
		FullMethod("SearchMonsters"),
		FullMethod("GetMonsterStats"),
		FullMethod("GetMagicItem"),
		FullMethod("ListMagicItems"),
	}
}

// ServiceDesc describes CompendiumService for grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CompendiumServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateMonster", CompendiumServiceServer.CreateMonster),
		unary("UpdateMonster", CompendiumServiceServer.UpdateMonster),
		unary("GetMonster", CompendiumServiceServer.GetMonster),
		unary("DeleteMonster", CompendiumServiceServer.DeleteMonster),
		unary("ListMonsters", CompendiumServiceServer.ListMonsters),
		unary("SearchMonsters", CompendiumServiceServer.SearchMonsters),
		unary("GetMonsterStats", CompendiumServiceServer.GetMonsterStats),
		unary("CreateMagicItem", CompendiumServiceServer.CreateMagicItem),
		unary("GetMagicItem", CompendiumServiceServer.GetMagicItem),
		unary("DeleteMagicItem", CompendiumServiceServer.DeleteMagicItem),
		unary("ListMagicItems", CompendiumServiceServer.ListMagicItems),
		unary("ImportSRDWeapons", CompendiumServiceServer.ImportSRDWeapons),
		unary("GetProfile", CompendiumServiceServer.GetProfile),
		unary("UpdateProfile", CompendiumServiceServer.UpdateProfile),
		unary("GetPreference", CompendiumServiceServer.GetPreference),
		unary("SetPreference", CompendiumServiceServer.SetPreference),
		unary("ListPreferences", CompendiumServiceServer.ListPreferences),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "compendium/api/v1alpha1/compendium.json",
}

// RegisterCompendiumServiceServer registers srv on s
func RegisterCompendiumServiceServer(s grpc.ServiceRegistrar, srv CompendiumServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func unary[Req, Resp any](
	name string,
	call func(CompendiumServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	fullMethod := FullMethod(name)
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(CompendiumServiceServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*Req))
			})
		},
	}
}

// Client calls CompendiumService with the JSON codec
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps a connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, c *Client, method string, in *Req, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateMonster(ctx context.Context, in *CreateMonsterRequest, opts ...grpc.CallOption) (*CreateMonsterResponse, error) {
	return invoke[CreateMonsterRequest, CreateMonsterResponse](ctx, c, "CreateMonster", in, opts...)
}

func (c *Client) UpdateMonster(ctx context.Context, in *UpdateMonsterRequest, opts ...grpc.CallOption) (*UpdateMonsterResponse, error) {
	return invoke[UpdateMonsterRequest, UpdateMonsterResponse](ctx, c, "UpdateMonster", in, opts...)
}

func (c *Client) GetMonster(ctx context.Context, in *GetMonsterRequest, opts ...grpc.CallOption) (*GetMonsterResponse, error) {
	return invoke[GetMonsterRequest, GetMonsterResponse](ctx, c, "GetMonster", in, opts...)
}

func (c *Client) DeleteMonster(ctx context.Context, in *DeleteMonsterRequest, opts ...grpc.CallOption) (*DeleteMonsterResponse, error) {
	return invoke[DeleteMonsterRequest, DeleteMonsterResponse](ctx, c, "DeleteMonster", in, opts...)
}

func (c *Client) ListMonsters(ctx context.Context, in *ListMonstersRequest, opts ...grpc.CallOption) (*ListMonstersResponse, error) {
	return invoke[ListMonstersRequest, ListMonstersResponse](ctx, c, "ListMonsters", in, opts...)
}

func (c *Client) SearchMonsters(ctx context.Context, in *SearchMonstersRequest, opts ...grpc.CallOption) (*SearchMonstersResponse, error) {
	return invoke[SearchMonstersRequest, SearchMonstersResponse](ctx, c, "SearchMonsters", in, opts...)
}

func (c *Client) GetMonsterStats(ctx context.Context, in *GetMonsterStatsRequest, opts ...grpc.CallOption) (*GetMonsterStatsResponse, error) {
	return invoke[GetMonsterStatsRequest, GetMonsterStatsResponse](ctx, c, "GetMonsterStats", in, opts...)
}

func (c *Client) CreateMagicItem(ctx context.Context, in *CreateMagicItemRequest, opts ...grpc.CallOption) (*CreateMagicItemResponse, error) {
	return invoke[CreateMagicItemRequest, CreateMagicItemResponse](ctx, c, "CreateMagicItem", in, opts...)
}

func (c *Client) GetMagicItem(ctx context.Context, in *GetMagicItemRequest, opts ...grpc.CallOption) (*GetMagicItemResponse, error) {
	return invoke[GetMagicItemRequest, GetMagicItemResponse](ctx, c, "GetMagicItem", in, opts...)
}

func (c *Client) DeleteMagicItem(ctx context.Context, in *DeleteMagicItemRequest, opts ...grpc.CallOption) (*DeleteMagicItemResponse, error) {
	return invoke[DeleteMagicItemRequest, DeleteMagicItemResponse](ctx, c, "DeleteMagicItem", in, opts...)
}

func (c *Client) ListMagicItems(ctx context.Context, in *ListMagicItemsRequest, opts ...grpc.CallOption) (*ListMagicItemsResponse, error) {
	return invoke[ListMagicItemsRequest, ListMagicItemsResponse](ctx, c, "ListMagicItems", in, opts...)
}

func (c *Client) ImportSRDWeapons(ctx context.Context, in *ImportSRDWeaponsRequest, opts ...grpc.CallOption) (*ImportSRDWeaponsResponse, error) {
	return invoke[ImportSRDWeaponsRequest, ImportSRDWeaponsResponse](ctx, c, "ImportSRDWeapons", in, opts...)
}

func (c *Client) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error) {
	return invoke[GetProfileRequest, GetProfileResponse](ctx, c, "GetProfile", in, opts...)
}

func (c *Client) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error) {
	return invoke[UpdateProfileRequest, UpdateProfileResponse](ctx, c, "UpdateProfile", in, opts...)
}

func (c *Client) GetPreference(ctx context.Context, in *GetPreferenceRequest, opts ...grpc.CallOption) (*GetPreferenceResponse, error) {
	return invoke[GetPreferenceRequest, GetPreferenceResponse](ctx, c, "GetPreference", in, opts...)
}

func (c *Client) SetPreference(ctx context.Context, in *SetPreferenceRequest, opts ...grpc.CallOption) (*SetPreferenceResponse, error) {
	return invoke[SetPreferenceRequest, SetPreferenceResponse](ctx, c, "SetPreference", in, opts...)
}

func (c *Client) ListPreferences(ctx context.Context, in *ListPreferencesRequest, opts ...grpc.CallOption) (*ListPreferencesResponse, error) {
	return invoke[ListPreferencesRequest, ListPreferencesResponse](ctx, c, "ListPreferences", in, opts...)
}
