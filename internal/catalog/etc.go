package catalog

// Fixed price list for partial and custom work. PriceText is shown verbatim;
// BasePrice anchors the booking deposit for the entry.
var etcTable = []EtcService{
	{ID: "point_wrap", Name: "포인트 랩핑", PriceText: "40만원 ~ 110만원", BasePrice: 400_000},
	{ID: "sanding", Name: "샌딩 추가", PriceText: "10만원 ~ 30만원", BasePrice: 100_000},
	{ID: "windshield", Name: "윈드쉴드", PriceText: "60만원 ~ 80만원", BasePrice: 600_000},
	{ID: "wrap_removal", Name: "랩핑 제거", PriceText: "30만원 (타사 50만원)", BasePrice: 300_000},
	{ID: "door_ppf", Name: "도어 PPF", PriceText: "개당 40만원", BasePrice: 400_000},
	{ID: "chrome_delete", Name: "크롬 딜리트", PriceText: "70만원 ~ 130만원", BasePrice: 700_000},
	{ID: "door_chrome_delete", Name: "도어 크롬 딜리트", PriceText: "50만원", BasePrice: 500_000},
	{ID: "front_ppf", Name: "전면 PPF (본넷+휀다+범퍼)", PriceText: "170만원", BasePrice: 1_700_000},
	{ID: "side_mirror", Name: "사이드미러", PriceText: "20만원", BasePrice: 200_000},
	{ID: "light_ppf", Name: "라이트 PPF", PriceText: "20만원", BasePrice: 200_000},
	{ID: "door_jamb", Name: "도어잼", PriceText: "50만원", BasePrice: 500_000},
	{ID: "interior_ppf", Name: "실내 PPF", PriceText: "30만원 ~ 60만원", BasePrice: 300_000},
	{ID: "b_pillar_gloss", Name: "B필러 하이그로시", PriceText: "15만원", BasePrice: 150_000},
	{ID: "headlight_smoke", Name: "헤드라이트 스모그", PriceText: "25만원", BasePrice: 250_000},
}
