package lexicon

// Keyword priorities: 0 = canonical code token, 1 = explicit "quẻ <name>"
// form, 2 = bilingual concept synonym. Keys reused by more than one entry
// (a corpus-revision artifact, e.g. QUE_PHE_HAP serving both entry 12 and
// entry 21) resolve by priority, then longest-keyword-first, then the
// declaration order below.
var defaultEntries = []Entry{
	// 1. Kiền — The Creative
	{"que_kien", "QUE_KIEN", 0},
	{"quẻ kiền", "QUE_KIEN", 1}, {"que kien", "QUE_KIEN", 1},
	{"qian", "QUE_KIEN", 2}, {"creative", "QUE_KIEN", 2}, {"heaven", "QUE_KIEN", 2},
	{"leadership", "QUE_KIEN", 2}, {"sáng tạo", "QUE_KIEN", 2}, {"trời", "QUE_KIEN", 2},

	// 2. Khôn — The Receptive
	{"que_khon", "QUE_KHON", 0},
	{"quẻ khôn", "QUE_KHON", 1}, {"que khon", "QUE_KHON", 1},
	{"kun", "QUE_KHON", 2}, {"receptive", "QUE_KHON", 2}, {"earth", "QUE_KHON", 2},
	{"nurturing", "QUE_KHON", 2}, {"đất", "QUE_KHON", 2}, {"bao dung", "QUE_KHON", 2},

	// 3. Truân — Difficulty at the Beginning
	{"que_truan", "QUE_TRUAN", 0},
	{"quẻ truân", "QUE_TRUAN", 1}, {"que truan", "QUE_TRUAN", 1},
	{"zhun", "QUE_TRUAN", 2}, {"sprouting", "QUE_TRUAN", 2}, {"difficulty", "QUE_TRUAN", 2},
	{"khó khăn", "QUE_TRUAN", 2}, {"khởi đầu", "QUE_TRUAN", 2},

	// 4. Mông — Youthful Folly
	{"que_mong", "QUE_MONG", 0},
	{"quẻ mông", "QUE_MONG", 1}, {"que mong", "QUE_MONG", 1},
	{"meng", "QUE_MONG", 2}, {"inexperience", "QUE_MONG", 2}, {"teaching", "QUE_MONG", 2},
	{"học tập", "QUE_MONG", 2}, {"dạy dỗ", "QUE_MONG", 2},

	// 5. Nhu — Waiting
	{"que_nhu", "QUE_NHU", 0},
	{"quẻ nhu", "QUE_NHU", 1}, {"que nhu", "QUE_NHU", 1},
	{"waiting", "QUE_NHU", 2}, {"patience", "QUE_NHU", 2}, {"nourishment", "QUE_NHU", 2},
	{"chờ đợi", "QUE_NHU", 2}, {"kiên nhẫn", "QUE_NHU", 2},

	// 6. Tụng — Conflict
	{"que_tung", "QUE_TUNG", 0},
	{"quẻ tụng", "QUE_TUNG", 1}, {"que tung", "QUE_TUNG", 1},
	{"lawsuit", "QUE_TUNG", 2}, {"dispute", "QUE_TUNG", 2}, {"conflict", "QUE_TUNG", 2},
	{"xung đột", "QUE_TUNG", 2}, {"tranh chấp", "QUE_TUNG", 2},

	// 7. Sư — The Army
	{"que_su", "QUE_SU", 0},
	{"quẻ sư", "QUE_SU", 1}, {"que su", "QUE_SU", 1},
	{"army", "QUE_SU", 2}, {"discipline", "QUE_SU", 2}, {"military", "QUE_SU", 2},
	{"leadership", "QUE_SU", 2}, {"quân đội", "QUE_SU", 2}, {"chiến tranh", "QUE_SU", 2},

	// 8. Tỷ — Holding Together
	{"que_ty", "QUE_TY", 0},
	{"quẻ tỷ", "QUE_TY", 1}, {"que ty", "QUE_TY", 1},
	{"union", "QUE_TY", 2}, {"alliance", "QUE_TY", 2}, {"holding together", "QUE_TY", 2},
	{"đoàn kết", "QUE_TY", 2}, {"liên minh", "QUE_TY", 2},

	// 9. Tiểu Súc — Small Taming
	{"que_tieu_suc", "QUE_TIEU_SUC", 0},
	{"quẻ tiểu súc", "QUE_TIEU_SUC", 1}, {"que tieu suc", "QUE_TIEU_SUC", 1},
	{"small taming", "QUE_TIEU_SUC", 2}, {"restraint", "QUE_TIEU_SUC", 2},
	{"tích lũy nhỏ", "QUE_TIEU_SUC", 2},

	// 10. Lý — Treading
	{"que_ly", "QUE_LY", 0},
	{"quẻ lý", "QUE_LY", 1}, {"que ly", "QUE_LY", 1},
	{"treading", "QUE_LY", 2}, {"conduct", "QUE_LY", 2}, {"cẩn trọng", "QUE_LY", 2},

	// 11. Thái — Peace
	{"que_thai", "QUE_THAI", 0},
	{"quẻ thái", "QUE_THAI", 1}, {"que thai", "QUE_THAI", 1},
	{"tai", "QUE_THAI", 2}, {"peace", "QUE_THAI", 2}, {"prosperity", "QUE_THAI", 2},
	{"harmony", "QUE_THAI", 2}, {"thịnh vượng", "QUE_THAI", 2}, {"hòa bình", "QUE_THAI", 2},

	// 12. Phì — Standstill (code reused by entry 21 across corpus revisions)
	{"que_phe_hap", "QUE_PHE_HAP", 0},
	{"quẻ phì", "QUE_PHE_HAP", 1}, {"que phi", "QUE_PHE_HAP", 1},
	{"stagnation", "QUE_PHE_HAP", 2}, {"standstill", "QUE_PHE_HAP", 2},
	{"obstruction", "QUE_PHE_HAP", 2}, {"trì trệ", "QUE_PHE_HAP", 2},

	// 13. Đồng Nhân — Fellowship
	{"que_dong_nhan", "QUE_DONG_NHAN", 0},
	{"quẻ đồng nhân", "QUE_DONG_NHAN", 1}, {"que dong nhan", "QUE_DONG_NHAN", 1},
	{"fellowship", "QUE_DONG_NHAN", 2}, {"community", "QUE_DONG_NHAN", 2},
	{"đồng lòng", "QUE_DONG_NHAN", 2},

	// 14. Đại Hữu — Great Possession
	{"que_dai_huu", "QUE_DAI_HUU", 0},
	{"quẻ đại hữu", "QUE_DAI_HUU", 1}, {"que dai huu", "QUE_DAI_HUU", 1},
	{"great possession", "QUE_DAI_HUU", 2}, {"abundance of means", "QUE_DAI_HUU", 2},
	{"giàu có", "QUE_DAI_HUU", 2},

	// 15. Khiêm — Modesty
	{"que_khiem", "QUE_KHIEM", 0},
	{"quẻ khiêm", "QUE_KHIEM", 1}, {"que khiem", "QUE_KHIEM", 1},
	{"modesty", "QUE_KHIEM", 2}, {"humility", "QUE_KHIEM", 2}, {"khiêm tốn", "QUE_KHIEM", 2},

	// 16. Dự — Enthusiasm
	{"que_du", "QUE_DU", 0},
	{"quẻ dự", "QUE_DU", 1}, {"que du", "QUE_DU", 1},
	{"enthusiasm", "QUE_DU", 2}, {"inspiration", "QUE_DU", 2}, {"hăng hái", "QUE_DU", 2},

	// 17. Tùy — Following
	{"que_tuy", "QUE_TUY", 0},
	{"quẻ tùy", "QUE_TUY", 1}, {"que tuy", "QUE_TUY", 1},
	{"sui", "QUE_TUY", 2}, {"following", "QUE_TUY", 2}, {"adaptation", "QUE_TUY", 2},
	{"thuận theo", "QUE_TUY", 2},

	// 18. Cổ — Work on What Has Been Spoiled
	{"que_co", "QUE_CO", 0},
	{"quẻ cổ", "QUE_CO", 1}, {"que co", "QUE_CO", 1},
	{"decay", "QUE_CO", 2}, {"repair", "QUE_CO", 2}, {"sửa chữa", "QUE_CO", 2},

	// 19. Lâm — Approach
	{"que_lam", "QUE_LAM", 0},
	{"quẻ lâm", "QUE_LAM", 1}, {"que lam", "QUE_LAM", 1},
	{"lin", "QUE_LAM", 2}, {"approach", "QUE_LAM", 2}, {"tiến tới", "QUE_LAM", 2},

	// 20. Quán — Contemplation
	{"que_quan", "QUE_QUAN", 0},
	{"quẻ quán", "QUE_QUAN", 1}, {"que quan", "QUE_QUAN", 1},
	{"guan", "QUE_QUAN", 2}, {"contemplation", "QUE_QUAN", 2}, {"quan sát", "QUE_QUAN", 2},

	// 21. Thích Hạc — Biting Through (shares QUE_PHE_HAP with entry 12)
	{"quẻ thích hạc", "QUE_PHE_HAP", 1}, {"que thich hac", "QUE_PHE_HAP", 1},
	{"biting through", "QUE_PHE_HAP", 2}, {"justice", "QUE_PHE_HAP", 2},
	{"punishment", "QUE_PHE_HAP", 2}, {"công lý", "QUE_PHE_HAP", 2},

	// 22. Bí — Grace
	{"que_bi_2", "QUE_BI_2", 0},
	{"quẻ bí", "QUE_BI_2", 1}, {"que bi", "QUE_BI_2", 1},
	{"grace", "QUE_BI_2", 2}, {"elegance", "QUE_BI_2", 2}, {"beauty", "QUE_BI_2", 2},
	{"vẻ đẹp", "QUE_BI_2", 2},

	// 23. Bác — Splitting Apart
	{"que_bac", "QUE_BAC", 0},
	{"quẻ bác", "QUE_BAC", 1}, {"que bac", "QUE_BAC", 1},
	{"splitting apart", "QUE_BAC", 2}, {"collapse", "QUE_BAC", 2}, {"tan rã", "QUE_BAC", 2},

	// 24. Phục — Return
	{"que_phuc", "QUE_PHUC", 0},
	{"quẻ phục", "QUE_PHUC", 1}, {"que phuc", "QUE_PHUC", 1},
	{"return", "QUE_PHUC", 2}, {"turning point", "QUE_PHUC", 2}, {"trở lại", "QUE_PHUC", 2},

	// 25. Vô Vọng — Innocence
	{"que_vo_vong", "QUE_VO_VONG", 0},
	{"quẻ vô vọng", "QUE_VO_VONG", 1}, {"que vo vong", "QUE_VO_VONG", 1},
	{"innocence", "QUE_VO_VONG", 2}, {"spontaneity", "QUE_VO_VONG", 2},
	{"hồn nhiên", "QUE_VO_VONG", 2},

	// 26. Đại Súc — Great Taming
	{"que_dai_suc", "QUE_DAI_SUC", 0},
	{"quẻ đại súc", "QUE_DAI_SUC", 1}, {"que dai suc", "QUE_DAI_SUC", 1},
	{"great taming", "QUE_DAI_SUC", 2}, {"accumulation", "QUE_DAI_SUC", 2},
	{"tích lũy lớn", "QUE_DAI_SUC", 2},

	// 27. Di — The Corners of the Mouth
	{"que_di", "QUE_DI", 0},
	{"quẻ di", "QUE_DI", 1}, {"que di", "QUE_DI", 1},
	{"nourishment", "QUE_DI", 2}, {"sustenance", "QUE_DI", 2}, {"nuôi dưỡng", "QUE_DI", 2},

	// 28. Đại Quá — Great Exceeding
	{"que_dai_qua", "QUE_DAI_QUA", 0},
	{"quẻ đại quá", "QUE_DAI_QUA", 1}, {"que dai qua", "QUE_DAI_QUA", 1},
	{"great exceeding", "QUE_DAI_QUA", 2}, {"critical mass", "QUE_DAI_QUA", 2},
	{"quá tải", "QUE_DAI_QUA", 2},

	// 29. Khảm — The Abysmal Water
	{"que_tap_kham", "QUE_TAP_KHAM", 0},
	{"quẻ tập khảm", "QUE_TAP_KHAM", 1}, {"que tap kham", "QUE_TAP_KHAM", 1},
	{"quẻ khảm", "QUE_TAP_KHAM", 1},
	{"abyss", "QUE_TAP_KHAM", 2}, {"danger", "QUE_TAP_KHAM", 2}, {"water", "QUE_TAP_KHAM", 2},
	{"difficulty", "QUE_TAP_KHAM", 2}, {"nguy hiểm", "QUE_TAP_KHAM", 2},

	// 30. Ly — The Clinging Fire
	{"que_ly_2", "QUE_LY_2", 0},
	{"quẻ ly", "QUE_LY_2", 1}, {"que ly", "QUE_LY_2", 1},
	{"fire", "QUE_LY_2", 2}, {"clinging", "QUE_LY_2", 2}, {"brightness", "QUE_LY_2", 2},
	{"lửa", "QUE_LY_2", 2},

	// 31. Hàm — Influence
	{"que_ham", "QUE_HAM", 0},
	{"quẻ hàm", "QUE_HAM", 1}, {"que ham", "QUE_HAM", 1},
	{"xian", "QUE_HAM", 2}, {"influence", "QUE_HAM", 2}, {"attraction", "QUE_HAM", 2},
	{"cảm ứng", "QUE_HAM", 2},

	// 32. Hằng — Duration
	{"que_hang", "QUE_HANG", 0},
	{"quẻ hằng", "QUE_HANG", 1}, {"que hang", "QUE_HANG", 1},
	{"heng", "QUE_HANG", 2}, {"duration", "QUE_HANG", 2}, {"constancy", "QUE_HANG", 2},
	{"bền vững", "QUE_HANG", 2},

	// 33. Độn — Retreat
	{"que_don", "QUE_DON", 0},
	{"quẻ độn", "QUE_DON", 1}, {"que don", "QUE_DON", 1},
	{"retreat", "QUE_DON", 2}, {"withdrawal", "QUE_DON", 2}, {"rút lui", "QUE_DON", 2},

	// 34. Đại Tráng — Great Power
	{"que_dai_trang", "QUE_DAI_TRANG", 0},
	{"quẻ đại tráng", "QUE_DAI_TRANG", 1}, {"que dai trang", "QUE_DAI_TRANG", 1},
	{"great power", "QUE_DAI_TRANG", 2}, {"vigor", "QUE_DAI_TRANG", 2},
	{"sức mạnh", "QUE_DAI_TRANG", 2},

	// 35. Tấn — Progress
	{"que_tan", "QUE_TAN", 0},
	{"quẻ tấn", "QUE_TAN", 1}, {"que tan", "QUE_TAN", 1},
	{"jin", "QUE_TAN", 2}, {"progress", "QUE_TAN", 2}, {"advance", "QUE_TAN", 2},
	{"tiến bộ", "QUE_TAN", 2},

	// 36. Minh Di — Darkening of the Light
	{"que_minh_di", "QUE_MINH_DI", 0},
	{"quẻ minh di", "QUE_MINH_DI", 1}, {"que minh di", "QUE_MINH_DI", 1},
	{"darkening light", "QUE_MINH_DI", 2}, {"adversity", "QUE_MINH_DI", 2},
	{"che giấu ánh sáng", "QUE_MINH_DI", 2},

	// 37. Gia Nhân — The Family
	{"que_gia_nhan", "QUE_GIA_NHAN", 0},
	{"quẻ gia nhân", "QUE_GIA_NHAN", 1}, {"que gia nhan", "QUE_GIA_NHAN", 1},
	{"family", "QUE_GIA_NHAN", 2}, {"household", "QUE_GIA_NHAN", 2},
	{"gia đình", "QUE_GIA_NHAN", 2},

	// 38. Khuê — Opposition
	{"que_khue", "QUE_KHUE", 0},
	{"quẻ khuê", "QUE_KHUE", 1}, {"que khue", "QUE_KHUE", 1},
	{"kui", "QUE_KHUE", 2}, {"opposition", "QUE_KHUE", 2}, {"estrangement", "QUE_KHUE", 2},
	{"chia rẽ", "QUE_KHUE", 2},

	// 39. Giản — Obstruction
	{"que_gian", "QUE_GIAN", 0},
	{"quẻ giản", "QUE_GIAN", 1}, {"que gian", "QUE_GIAN", 1},
	{"impediment", "QUE_GIAN", 2}, {"hardship", "QUE_GIAN", 2}, {"trở ngại", "QUE_GIAN", 2},

	// 40. Giải — Deliverance
	{"que_giai", "QUE_GIAI", 0},
	{"quẻ giải", "QUE_GIAI", 1}, {"que giai", "QUE_GIAI", 1},
	{"jie", "QUE_GIAI", 2}, {"deliverance", "QUE_GIAI", 2}, {"liberation", "QUE_GIAI", 2},
	{"giải thoát", "QUE_GIAI", 2},

	// 41. Tổn — Decrease
	{"que_ton", "QUE_TON", 0},
	{"quẻ tổn", "QUE_TON", 1}, {"que ton", "QUE_TON", 1},
	{"decrease", "QUE_TON", 2}, {"sacrifice", "QUE_TON", 2}, {"giảm bớt", "QUE_TON", 2},

	// 42. Ích — Increase
	{"que_ich", "QUE_ICH", 0},
	{"quẻ ích", "QUE_ICH", 1}, {"que ich", "QUE_ICH", 1},
	{"increase", "QUE_ICH", 2}, {"benefit", "QUE_ICH", 2}, {"gia tăng", "QUE_ICH", 2},

	// 43. Quải — Breakthrough
	{"que_quai", "QUE_QUAI", 0},
	{"quẻ quải", "QUE_QUAI", 1}, {"que quai", "QUE_QUAI", 1},
	{"guai", "QUE_QUAI", 2}, {"breakthrough", "QUE_QUAI", 2}, {"resolution", "QUE_QUAI", 2},
	{"quyết đoán", "QUE_QUAI", 2},

	// 44. Cấu — Coming to Meet
	{"que_cau", "QUE_CAU", 0},
	{"quẻ cấu", "QUE_CAU", 1}, {"que cau", "QUE_CAU", 1},
	{"gou", "QUE_CAU", 2}, {"coming to meet", "QUE_CAU", 2}, {"encounter", "QUE_CAU", 2},
	{"gặp gỡ", "QUE_CAU", 2},

	// 45. Tụy — Gathering Together (shares QUE_TUY with entry 17)
	{"quẻ tụy", "QUE_TUY", 1}, {"que tuy 45", "QUE_TUY", 1},
	{"cui", "QUE_TUY", 2}, {"gathering", "QUE_TUY", 2}, {"tụ họp", "QUE_TUY", 2},

	// 46. Thăng — Pushing Upward
	{"que_thang", "QUE_THANG", 0},
	{"quẻ thăng", "QUE_THANG", 1}, {"que thang", "QUE_THANG", 1},
	{"sheng", "QUE_THANG", 2}, {"pushing upward", "QUE_THANG", 2}, {"ascending", "QUE_THANG", 2},
	{"thăng tiến", "QUE_THANG", 2},

	// 47. Khốn — Oppression
	{"que_khon_2", "QUE_KHON_2", 0},
	{"quẻ khốn", "QUE_KHON_2", 1}, {"que khon 47", "QUE_KHON_2", 1},
	{"oppression", "QUE_KHON_2", 2}, {"exhaustion", "QUE_KHON_2", 2}, {"khốn đốn", "QUE_KHON_2", 2},

	// 48. Tỉnh — The Well
	{"que_tinh", "QUE_TINH", 0},
	{"quẻ tỉnh", "QUE_TINH", 1}, {"que tinh", "QUE_TINH", 1},
	{"jing", "QUE_TINH", 2}, {"well", "QUE_TINH", 2}, {"giếng nước", "QUE_TINH", 2},

	// 49. Cách — Revolution
	{"que_cach", "QUE_CACH", 0},
	{"quẻ cách", "QUE_CACH", 1}, {"que cach", "QUE_CACH", 1},
	{"ge", "QUE_CACH", 2}, {"revolution", "QUE_CACH", 2}, {"change", "QUE_CACH", 2},
	{"transformation", "QUE_CACH", 2}, {"cách mạng", "QUE_CACH", 2}, {"thay đổi", "QUE_CACH", 2},

	// 50. Đỉnh — The Cauldron
	{"que_dinh", "QUE_DINH", 0},
	{"quẻ đỉnh", "QUE_DINH", 1}, {"que dinh", "QUE_DINH", 1},
	{"ding", "QUE_DINH", 2}, {"cauldron", "QUE_DINH", 2}, {"refinement", "QUE_DINH", 2},
	{"vạc dầu", "QUE_DINH", 2},

	// 51. Chấn — The Arousing Thunder
	{"que_chan", "QUE_CHAN", 0},
	{"quẻ chấn", "QUE_CHAN", 1}, {"que chan", "QUE_CHAN", 1},
	{"zhen", "QUE_CHAN", 2}, {"thunder", "QUE_CHAN", 2}, {"shock", "QUE_CHAN", 2},
	{"sấm sét", "QUE_CHAN", 2},

	// 52. Cấn — Keeping Still Mountain
	{"que_can", "QUE_CAN", 0},
	{"quẻ cấn", "QUE_CAN", 1}, {"que can", "QUE_CAN", 1},
	{"gen", "QUE_CAN", 2}, {"mountain", "QUE_CAN", 2}, {"stillness", "QUE_CAN", 2},
	{"tĩnh lặng", "QUE_CAN", 2},

	// 53. Tiệm — Development
	{"que_tiem", "QUE_TIEM", 0},
	{"quẻ tiệm", "QUE_TIEM", 1}, {"que tiem", "QUE_TIEM", 1},
	{"gradual progress", "QUE_TIEM", 2}, {"development", "QUE_TIEM", 2},
	{"tiệm tiến", "QUE_TIEM", 2},

	// 54. Quy Muội — The Marrying Maiden
	{"que_qui_muoi", "QUE_QUI_MUOI", 0},
	{"quẻ quy muội", "QUE_QUI_MUOI", 1}, {"que qui muoi", "QUE_QUI_MUOI", 1},
	{"marrying maiden", "QUE_QUI_MUOI", 2}, {"subordinate place", "QUE_QUI_MUOI", 2},
	{"em gái về nhà chồng", "QUE_QUI_MUOI", 2},

	// 55. Phong — Abundance
	{"que_phong", "QUE_PHONG", 0},
	{"quẻ phong", "QUE_PHONG", 1}, {"que phong", "QUE_PHONG", 1},
	{"feng", "QUE_PHONG", 2}, {"abundance", "QUE_PHONG", 2}, {"fullness", "QUE_PHONG", 2},
	{"sung túc", "QUE_PHONG", 2},

	// 56. Lữ — The Wanderer
	{"que_lu", "QUE_LU", 0},
	{"quẻ lữ", "QUE_LU", 1}, {"que lu", "QUE_LU", 1},
	{"wanderer", "QUE_LU", 2}, {"traveler", "QUE_LU", 2}, {"lữ khách", "QUE_LU", 2},

	// 57. Tốn — The Gentle Wind (shares concepts with entry 31's "influence")
	{"que_ton_2", "QUE_TON_2", 0},
	{"quẻ tốn", "QUE_TON_2", 1}, {"que ton 57", "QUE_TON_2", 1},
	{"xun", "QUE_TON_2", 2}, {"gentle", "QUE_TON_2", 2}, {"wind", "QUE_TON_2", 2},
	{"penetrating", "QUE_TON_2", 2}, {"gió", "QUE_TON_2", 2},

	// 58. Đoài — The Joyous Lake
	{"que_doai", "QUE_DOAI", 0},
	{"quẻ đoài", "QUE_DOAI", 1}, {"que doai", "QUE_DOAI", 1},
	{"dui", "QUE_DOAI", 2}, {"joyous", "QUE_DOAI", 2}, {"lake", "QUE_DOAI", 2},
	{"vui vẻ", "QUE_DOAI", 2},

	// 59. Hoán — Dispersion
	{"que_hoan", "QUE_HOAN", 0},
	{"quẻ hoán", "QUE_HOAN", 1}, {"que hoan", "QUE_HOAN", 1},
	{"huan", "QUE_HOAN", 2}, {"dispersion", "QUE_HOAN", 2}, {"dissolution", "QUE_HOAN", 2},
	{"phân tán", "QUE_HOAN", 2},

	// 60. Tiết — Limitation
	{"que_tiet", "QUE_TIET", 0},
	{"quẻ tiết", "QUE_TIET", 1}, {"que tiet", "QUE_TIET", 1},
	{"limitation", "QUE_TIET", 2}, {"moderation", "QUE_TIET", 2}, {"tiết chế", "QUE_TIET", 2},

	// 61. Trung Phu — Inner Truth
	{"que_trung_phu", "QUE_TRUNG_PHU", 0},
	{"quẻ trung phu", "QUE_TRUNG_PHU", 1}, {"que trung phu", "QUE_TRUNG_PHU", 1},
	{"inner truth", "QUE_TRUNG_PHU", 2}, {"sincerity", "QUE_TRUNG_PHU", 2},
	{"thành tín", "QUE_TRUNG_PHU", 2},

	// 62. Tiểu Quá — Small Exceeding
	{"que_tieu_qua", "QUE_TIEU_QUA", 0},
	{"quẻ tiểu quá", "QUE_TIEU_QUA", 1}, {"que tieu qua", "QUE_TIEU_QUA", 1},
	{"small exceeding", "QUE_TIEU_QUA", 2}, {"attention to detail", "QUE_TIEU_QUA", 2},
	{"việc nhỏ", "QUE_TIEU_QUA", 2},

	// 63. Ký Tế — After Completion
	{"que_ky_te", "QUE_KY_TE", 0},
	{"quẻ ký tế", "QUE_KY_TE", 1}, {"que ky te", "QUE_KY_TE", 1},
	{"after completion", "QUE_KY_TE", 2}, {"order achieved", "QUE_KY_TE", 2},
	{"đã hoàn thành", "QUE_KY_TE", 2},

	// 64. Vị Tế — Before Completion
	{"que_vi_te", "QUE_VI_TE", 0},
	{"quẻ vị tế", "QUE_VI_TE", 1}, {"que vi te", "QUE_VI_TE", 1},
	{"before completion", "QUE_VI_TE", 2}, {"transition", "QUE_VI_TE", 2},
	{"chưa hoàn thành", "QUE_VI_TE", 2},
}
